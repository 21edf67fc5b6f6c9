// Package mnpuzzle implements the sliding M×N tile puzzle (the 15-puzzle
// family): a rectangular grid of tiles with a single blank, where each move
// swaps the blank with an orthogonally adjacent tile, and the goal is to
// reach a given target arrangement.
package mnpuzzle

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Blank marks the empty cell in both the current and the target grid.
const Blank byte = '*'

// separator divides the current grid from the target grid in textual form.
const separator = "----->"

// Puzzle is one arrangement of the sliding puzzle: the current grid, the
// target grid it must reach, and the blank's position. The target is shared
// by all states of a search and never written after construction.
type Puzzle struct {
	rows, cols int
	from       []byte // row-major cells, exactly one Blank
	to         []byte
	blank      int // index of Blank in from
}

// New builds the initial state from a current and a target grid. Both must
// be rectangular, equal in size, contain exactly one Blank each, use only
// printable non-space symbols, and hold the same multiset of tiles; anything
// else wraps puzzle.ErrMalformedInput.
func New(from, to [][]byte) (*Puzzle, error) {
	ff, rows, cols, blank, err := flatten(from, "current")
	if err != nil {
		return nil, err
	}
	tf, trows, tcols, _, err := flatten(to, "target")
	if err != nil {
		return nil, err
	}
	if rows != trows || cols != tcols {
		return nil, fmt.Errorf("%w: mnpuzzle: current grid is %dx%d but target is %dx%d",
			puzzle.ErrMalformedInput, rows, cols, trows, tcols)
	}
	counts := make(map[byte]int, len(ff))
	for _, c := range ff {
		counts[c]++
	}
	for _, c := range tf {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			return nil, fmt.Errorf("%w: mnpuzzle: tile %q appears %d time(s) more in one grid than the other",
				puzzle.ErrMalformedInput, c, abs(n))
		}
	}
	return &Puzzle{rows: rows, cols: cols, from: ff, to: tf, blank: blank}, nil
}

// Parse reads a puzzle from text: the current grid's rows, a "----->" line,
// then the target grid's rows.
func Parse(text string) (*Puzzle, error) {
	lines := strings.Split(text, "\n")
	sep := -1
	for i, ln := range lines {
		if strings.TrimSpace(ln) == separator {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, fmt.Errorf("%w: mnpuzzle: missing %q line between current and target grids",
			puzzle.ErrMalformedInput, separator)
	}
	return New(gridLines(lines[:sep]), gridLines(lines[sep+1:]))
}

// gridLines trims each line and drops empty ones, returning grid rows.
func gridLines(lines []string) [][]byte {
	rows := make([][]byte, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		rows = append(rows, []byte(ln))
	}
	return rows
}

// flatten validates one grid and copies it into row-major form, returning
// the cells, dimensions, and blank index.
func flatten(g [][]byte, name string) ([]byte, int, int, int, error) {
	if len(g) == 0 {
		return nil, 0, 0, 0, fmt.Errorf("%w: mnpuzzle: %s grid is empty", puzzle.ErrMalformedInput, name)
	}
	rows, cols := len(g), len(g[0])
	if cols == 0 {
		return nil, 0, 0, 0, fmt.Errorf("%w: mnpuzzle: %s grid has an empty row", puzzle.ErrMalformedInput, name)
	}
	flat := make([]byte, 0, rows*cols)
	blank := -1
	for r, row := range g {
		if len(row) != cols {
			return nil, 0, 0, 0, fmt.Errorf("%w: mnpuzzle: %s grid is not rectangular: row %d has %d cells, want %d",
				puzzle.ErrMalformedInput, name, r, len(row), cols)
		}
		for c, cell := range row {
			if cell <= ' ' || cell > '~' {
				return nil, 0, 0, 0, fmt.Errorf("%w: mnpuzzle: %s grid holds illegal symbol %q at row %d col %d",
					puzzle.ErrMalformedInput, name, cell, r, c)
			}
			if cell == Blank {
				if blank >= 0 {
					return nil, 0, 0, 0, fmt.Errorf("%w: mnpuzzle: %s grid holds more than one blank",
						puzzle.ErrMalformedInput, name)
				}
				blank = r*cols + c
			}
			flat = append(flat, cell)
		}
	}
	if blank < 0 {
		return nil, 0, 0, 0, fmt.Errorf("%w: mnpuzzle: %s grid holds no blank", puzzle.ErrMalformedInput, name)
	}
	return flat, rows, cols, blank, nil
}

// IsSolved reports whether the current grid matches the target.
func (p *Puzzle) IsSolved() bool { return bytes.Equal(p.from, p.to) }

// FailFast applies the classic sliding-puzzle reachability invariant.
//
// On boards with at least two rows and two columns and all-distinct tiles,
// every move is a transposition (flipping permutation parity) that also moves
// the blank one step (flipping the parity of its taxicab distance to its
// target cell), so the two parities must match for the target to be
// reachable. On degenerate single-row or single-column boards tiles can
// never pass each other, so the tile order must already match. Boards with
// duplicate tiles make no promise.
func (p *Puzzle) FailFast() bool {
	if p.rows < 2 || p.cols < 2 {
		return !p.sameTileOrder()
	}
	if !p.distinctTiles() {
		return false
	}
	return !p.parityMatch()
}

func (p *Puzzle) distinctTiles() bool {
	seen := make(map[byte]bool, len(p.from))
	for _, c := range p.from {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func (p *Puzzle) sameTileOrder() bool {
	i, j := 0, 0
	for {
		for i < len(p.from) && p.from[i] == Blank {
			i++
		}
		for j < len(p.to) && p.to[j] == Blank {
			j++
		}
		if i == len(p.from) || j == len(p.to) {
			return i == len(p.from) && j == len(p.to)
		}
		if p.from[i] != p.to[j] {
			return false
		}
		i++
		j++
	}
}

func (p *Puzzle) parityMatch() bool {
	// Cycle decomposition: a cycle of length L costs L-1 transpositions.
	pos := make(map[byte]int, len(p.to))
	for i, c := range p.to {
		pos[c] = i
	}
	perm := make([]int, len(p.from))
	for i, c := range p.from {
		perm[i] = pos[c]
	}
	seen := make([]bool, len(perm))
	swaps := 0
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		swaps += length - 1
	}
	fr, fc := p.blank/p.cols, p.blank%p.cols
	tb := bytes.IndexByte(p.to, Blank)
	tr, tc := tb/p.cols, tb%p.cols
	dist := abs(fr-tr) + abs(fc-tc)
	return swaps%2 == dist%2
}

// Extensions yields every arrangement reachable by swapping the blank with
// an orthogonal neighbour, in up, down, left, right order.
func (p *Puzzle) Extensions() iter.Seq[puzzle.State] {
	return func(yield func(puzzle.State) bool) {
		r, c := p.blank/p.cols, p.blank%p.cols
		deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
		for _, d := range deltas {
			nr, nc := r+d[0], c+d[1]
			if nr < 0 || nr >= p.rows || nc < 0 || nc >= p.cols {
				continue
			}
			if !yield(p.swapped(nr*p.cols + nc)) {
				return
			}
		}
	}
}

// swapped returns a copy of the puzzle with the blank moved to cell i.
func (p *Puzzle) swapped(i int) *Puzzle {
	cells := make([]byte, len(p.from))
	copy(cells, p.from)
	cells[p.blank], cells[i] = cells[i], cells[p.blank]
	return &Puzzle{rows: p.rows, cols: p.cols, from: cells, to: p.to, blank: i}
}

// Key identifies the configuration by the current grid alone; the target
// never changes within a search.
func (p *Puzzle) Key() string { return renderGrid(p.from, p.rows, p.cols) }

// String renders the current grid, a "----->" line, and the target grid.
func (p *Puzzle) String() string {
	var b strings.Builder
	b.Grow((p.rows*(p.cols+1))*2 + len(separator) + 1)
	b.WriteString(renderGrid(p.from, p.rows, p.cols))
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')
	b.WriteString(renderGrid(p.to, p.rows, p.cols))
	return b.String()
}

func renderGrid(cells []byte, rows, cols int) string {
	var b strings.Builder
	b.Grow(rows * (cols + 1))
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.Write(cells[r*cols : (r+1)*cols])
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
