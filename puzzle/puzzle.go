package puzzle

import (
	"errors"
	"iter"
)

// ErrMalformedInput is returned (wrapped) by variant constructors when raw
// input cannot form a valid initial state.
var ErrMalformedInput = errors.New("puzzle: malformed input")

// State is one immutable configuration of a puzzle.
//
// Concrete variants additionally implement fmt.Stringer for presentation;
// the search engines never require it.
type State interface {
	// IsSolved reports whether this state satisfies the goal condition.
	IsSolved() bool

	// FailFast reports whether this state is provably unsolvable by a cheap,
	// purely local check. True implies no solution is reachable from here;
	// false makes no promise either way.
	FailFast() bool

	// Extensions yields every state reachable by exactly one legal move.
	// The sequence is finite, lazy, restartable, deterministic in order,
	// and never contains the receiver itself.
	Extensions() iter.Seq[State]

	// Key returns the canonical identity of this configuration. Two states
	// are interchangeable within a search exactly when their Keys are equal.
	Key() string
}
