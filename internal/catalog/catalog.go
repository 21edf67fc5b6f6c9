// Package catalog maps puzzle kind names to their textual parsers, so the
// command-line tool and the HTTP service dispatch on the same registry.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chenjie/puzzlesearch/mnpuzzle"
	"github.com/chenjie/puzzlesearch/pegsol"
	"github.com/chenjie/puzzlesearch/puzzle"
	"github.com/chenjie/puzzlesearch/sudoku"
	"github.com/chenjie/puzzlesearch/wordladder"
)

// ErrUnknownKind is returned when a kind name is not in the registry.
var ErrUnknownKind = errors.New("catalog: unknown puzzle kind")

// Kind names a puzzle variant.
type Kind string

// The known variants.
const (
	MNPuzzle   Kind = "mnpuzzle"
	PegSol     Kind = "pegsol"
	Sudoku     Kind = "sudoku"
	WordLadder Kind = "wordladder"
)

// Kinds returns the known kinds in stable order.
func Kinds() []Kind {
	return []Kind{MNPuzzle, PegSol, Sudoku, WordLadder}
}

// ParseKind maps a name (any case, surrounding space ignored) to its Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case MNPuzzle, PegSol, Sudoku, WordLadder:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, name, kindList())
}

// Parse builds the initial state of a kind from its textual form. Parse
// errors wrap puzzle.ErrMalformedInput.
func Parse(kind Kind, text string) (puzzle.State, error) {
	switch kind {
	case MNPuzzle:
		p, err := mnpuzzle.Parse(text)
		if err != nil {
			return nil, err
		}
		return p, nil
	case PegSol:
		p, err := pegsol.Parse(text)
		if err != nil {
			return nil, err
		}
		return p, nil
	case Sudoku:
		p, err := sudoku.Parse(text)
		if err != nil {
			return nil, err
		}
		return p, nil
	case WordLadder:
		p, err := wordladder.Parse(text)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Describe returns a one-line summary of the kind's input format.
func Describe(kind Kind) string {
	switch kind {
	case MNPuzzle:
		return "current grid rows, a -----> line, then target grid rows; * is the blank"
	case PegSol:
		return "grid rows of * (peg), . (empty) and # (unused)"
	case Sudoku:
		return "NxN grid, one row per line; *, . or 0 marks an empty cell"
	case WordLadder:
		return "start word, target word, then the word list (any whitespace)"
	default:
		return ""
	}
}

func kindList() string {
	kinds := Kinds()
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
