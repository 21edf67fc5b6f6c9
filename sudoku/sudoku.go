package sudoku

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Empty marks a cell with no symbol yet.
const Empty byte = '*'

// Puzzle is one n×n Sudoku arrangement.
type Puzzle struct {
	n, box int    // side length and box side (box*box == n)
	cells  []byte // row-major; Empty or '1'..'0'+n
}

// New builds a board from one string per row. The side must be a perfect
// square no larger than 9, every row must have that length, and every cell
// must be Empty or a symbol in 1..n; anything else wraps
// puzzle.ErrMalformedInput.
func New(rows []string) (*Puzzle, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: sudoku: grid is empty", puzzle.ErrMalformedInput)
	}
	if n > 9 {
		return nil, fmt.Errorf("%w: sudoku: side %d exceeds 9", puzzle.ErrMalformedInput, n)
	}
	box := 1
	for box*box < n {
		box++
	}
	if box*box != n {
		return nil, fmt.Errorf("%w: sudoku: side %d is not a perfect square", puzzle.ErrMalformedInput, n)
	}
	cells := make([]byte, 0, n*n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: sudoku: row %d has %d cells, want %d",
				puzzle.ErrMalformedInput, r, len(row), n)
		}
		for c := 0; c < n; c++ {
			ch := row[c]
			if ch != Empty && (ch < '1' || ch > byte('0'+n)) {
				return nil, fmt.Errorf("%w: sudoku: illegal symbol %q at row %d col %d (want %q or 1..%d)",
					puzzle.ErrMalformedInput, ch, r, c, Empty, n)
			}
			cells = append(cells, ch)
		}
	}
	return &Puzzle{n: n, box: box, cells: cells}, nil
}

// Parse reads a board from text, one line per row, ignoring blank lines.
// The characters '.' and '0' are accepted as Empty aliases.
func Parse(text string) (*Puzzle, error) {
	var rows []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		rows = append(rows, strings.Map(func(r rune) rune {
			if r == '.' || r == '0' {
				return rune(Empty)
			}
			return r
		}, ln))
	}
	return New(rows)
}

// IsSolved reports whether every cell is filled and no row, column, or box
// holds a duplicate.
func (p *Puzzle) IsSolved() bool {
	return bytes.IndexByte(p.cells, Empty) < 0 && !p.hasDuplicate()
}

// FailFast reports whether the board is provably unsolvable: a duplicate
// already placed in some unit, or an empty cell with no candidate left.
func (p *Puzzle) FailFast() bool {
	if p.hasDuplicate() {
		return true
	}
	full := p.fullMask()
	for i, cell := range p.cells {
		if cell != Empty {
			continue
		}
		if p.used(i/p.n, i%p.n)&full == full {
			return true
		}
	}
	return false
}

// Extensions yields one board per candidate symbol for the first empty cell
// in reading order, candidates ascending.
func (p *Puzzle) Extensions() iter.Seq[puzzle.State] {
	return func(yield func(puzzle.State) bool) {
		i := bytes.IndexByte(p.cells, Empty)
		if i < 0 {
			return
		}
		used := p.used(i/p.n, i%p.n)
		for v := 1; v <= p.n; v++ {
			if used&(1<<uint(v)) != 0 {
				continue
			}
			cells := make([]byte, len(p.cells))
			copy(cells, p.cells)
			cells[i] = byte('0' + v)
			if !yield(&Puzzle{n: p.n, box: p.box, cells: cells}) {
				return
			}
		}
	}
}

// Key identifies the arrangement by its flattened cells.
func (p *Puzzle) Key() string { return string(p.cells) }

// String renders the board, one row per line.
func (p *Puzzle) String() string {
	var b strings.Builder
	b.Grow(p.n * (p.n + 1))
	for r := 0; r < p.n; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.Write(p.cells[r*p.n : (r+1)*p.n])
	}
	return b.String()
}

// fullMask has bits 1..n set, one per symbol.
func (p *Puzzle) fullMask() uint { return (uint(1) << uint(p.n+1)) - 2 }

// used returns the mask of symbols already placed in row r, column c, and
// the box containing (r, c).
func (p *Puzzle) used(r, c int) uint {
	var m uint
	for i := 0; i < p.n; i++ {
		m |= symbolBit(p.cells[r*p.n+i])
		m |= symbolBit(p.cells[i*p.n+c])
	}
	br, bc := (r/p.box)*p.box, (c/p.box)*p.box
	for i := 0; i < p.box; i++ {
		for j := 0; j < p.box; j++ {
			m |= symbolBit(p.cells[(br+i)*p.n+bc+j])
		}
	}
	return m
}

// hasDuplicate scans every row, column, and box with a running bitmask; a
// bit seen twice is a duplicate.
func (p *Puzzle) hasDuplicate() bool {
	for r := 0; r < p.n; r++ {
		var rowMask, colMask uint
		for c := 0; c < p.n; c++ {
			if b := symbolBit(p.cells[r*p.n+c]); b != 0 {
				if rowMask&b != 0 {
					return true
				}
				rowMask |= b
			}
			if b := symbolBit(p.cells[c*p.n+r]); b != 0 {
				if colMask&b != 0 {
					return true
				}
				colMask |= b
			}
		}
	}
	for br := 0; br < p.n; br += p.box {
		for bc := 0; bc < p.n; bc += p.box {
			var m uint
			for i := 0; i < p.box; i++ {
				for j := 0; j < p.box; j++ {
					if b := symbolBit(p.cells[(br+i)*p.n+bc+j]); b != 0 {
						if m&b != 0 {
							return true
						}
						m |= b
					}
				}
			}
		}
	}
	return false
}

func symbolBit(cell byte) uint {
	if cell == Empty {
		return 0
	}
	return 1 << uint(cell-'0')
}
