// Package sudoku implements classic Sudoku boards as search states.
//
// A board is an n×n grid where n is a perfect square (1, 4, or 9), filled
// with the symbols 1..n or the Empty marker. The goal is to fill every cell
// so that each row, each column, and each √n×√n box holds n distinct
// symbols.
//
// Moves fill the first empty cell in reading order with one of its remaining
// candidates, so the branching factor stays at most n and the search tree
// never revisits an arrangement. Duplicate detection uses one bitmask per
// unit: symbol v occupies bit v, and a collision on insert is a duplicate.
//
// Constructors wrap puzzle.ErrMalformedInput on empty or non-square grids,
// sides that are not perfect squares, sides above 9, and illegal symbols.
// A board with a duplicated given is well-formed but unsolvable: FailFast
// reports it immediately and the search ends without generating children.
package sudoku
