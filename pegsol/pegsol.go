// Package pegsol implements grid peg solitaire: pegs jump over adjacent pegs
// into holes, the jumped peg is removed, and the board is solved when exactly
// one peg remains.
package pegsol

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Board markers.
const (
	Peg    byte = '*' // a cell holding a peg
	Empty  byte = '.' // a usable cell with no peg
	Unused byte = '#' // a cell outside the playable area
)

// Puzzle is one peg layout on a rectangular grid.
type Puzzle struct {
	rows, cols int
	cells      []byte // row-major
}

// New builds a board from one string per row. The grid must be non-empty,
// rectangular, and use only the Peg, Empty, and Unused markers; anything
// else wraps puzzle.ErrMalformedInput.
func New(grid []string) (*Puzzle, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: pegsol: grid is empty", puzzle.ErrMalformedInput)
	}
	rows, cols := len(grid), len(grid[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: pegsol: grid has an empty row", puzzle.ErrMalformedInput)
	}
	cells := make([]byte, 0, rows*cols)
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: pegsol: grid is not rectangular: row %d has %d cells, want %d",
				puzzle.ErrMalformedInput, r, len(row), cols)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case Peg, Empty, Unused:
				cells = append(cells, row[c])
			default:
				return nil, fmt.Errorf("%w: pegsol: illegal marker %q at row %d col %d (want %q, %q or %q)",
					puzzle.ErrMalformedInput, row[c], r, c, Peg, Empty, Unused)
			}
		}
	}
	return &Puzzle{rows: rows, cols: cols, cells: cells}, nil
}

// Parse reads a board from text, one line per row. Blank lines are ignored.
func Parse(text string) (*Puzzle, error) {
	var grid []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			grid = append(grid, ln)
		}
	}
	return New(grid)
}

// IsSolved reports whether exactly one peg remains.
func (p *Puzzle) IsSolved() bool { return bytes.Count(p.cells, []byte{Peg}) == 1 }

// FailFast reports whether the board is provably stuck: not solved and
// without a single legal jump anywhere, so the peg count can never change
// again. Covers boards of isolated pegs and boards with no pegs at all.
func (p *Puzzle) FailFast() bool {
	if p.IsSolved() {
		return false
	}
	return !p.hasJump()
}

func (p *Puzzle) hasJump() bool {
	for i, cell := range p.cells {
		if cell != Empty {
			continue
		}
		r, c := i/p.cols, i%p.cols
		for _, d := range directions {
			if p.jumpSources(r, c, d) {
				return true
			}
		}
	}
	return false
}

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// jumpSources reports whether a peg one step away in direction d can be
// jumped by the peg two steps away, landing at the empty cell (r, c).
func (p *Puzzle) jumpSources(r, c int, d [2]int) bool {
	or, oc := r+d[0], c+d[1]
	jr, jc := r+2*d[0], c+2*d[1]
	if jr < 0 || jr >= p.rows || jc < 0 || jc >= p.cols {
		return false
	}
	return p.cells[or*p.cols+oc] == Peg && p.cells[jr*p.cols+jc] == Peg
}

// Extensions yields every board reachable by one jump: for each empty cell
// and each of the four directions, the peg two cells away leaps over the
// adjacent peg into the hole and the jumped peg is removed.
func (p *Puzzle) Extensions() iter.Seq[puzzle.State] {
	return func(yield func(puzzle.State) bool) {
		for i, cell := range p.cells {
			if cell != Empty {
				continue
			}
			r, c := i/p.cols, i%p.cols
			for _, d := range directions {
				if !p.jumpSources(r, c, d) {
					continue
				}
				over := (r+d[0])*p.cols + c + d[1]
				jumper := (r+2*d[0])*p.cols + c + 2*d[1]
				cells := make([]byte, len(p.cells))
				copy(cells, p.cells)
				cells[i] = Peg
				cells[over] = Empty
				cells[jumper] = Empty
				if !yield(&Puzzle{rows: p.rows, cols: p.cols, cells: cells}) {
					return
				}
			}
		}
	}
}

// Key folds point-symmetric layouts into one identity: the board and its
// 180°-rotated twin reach mirrored solutions by mirrored jumps, so visiting
// one makes visiting the other redundant.
func (p *Puzzle) Key() string {
	s := renderCells(p.cells, p.rows, p.cols)
	r := renderCells(rotated180(p.cells), p.rows, p.cols)
	if r < s {
		return r
	}
	return s
}

// String renders the board, one row per line.
func (p *Puzzle) String() string { return renderCells(p.cells, p.rows, p.cols) }

func renderCells(cells []byte, rows, cols int) string {
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

// rotated180 returns a reversed copy of row-major cells, which is the board
// rotated by 180° regardless of its dimensions.
func rotated180(cells []byte) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[len(cells)-1-i] = c
	}
	return out
}
