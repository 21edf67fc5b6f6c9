// Package puzzle defines the capability contract between concrete puzzle
// variants and the search engines in package solver.
//
// What
//
//   - State: the four operations a search engine consumes:
//   - IsSolved()   — goal test
//   - FailFast()   — sound, cheap unsolvability test (pruning)
//   - Extensions() — lazy sequence of states one legal move away
//   - Key()        — canonical identity for visited-set membership
//   - ErrMalformedInput: the construction-time failure every variant
//     constructor wraps when raw input cannot form a valid state.
//
// Why
//
//   - The engines in package solver depend only on this interface, never on a
//     concrete variant, so a new puzzle plugs in without touching the core.
//   - Keys make deduplication explicit: two states are interchangeable exactly
//     when their Keys are equal, under whatever canonicalization the variant
//     chooses (pegsol folds point-symmetric boards into one Key).
//
// Contract
//
//   - States are immutable once constructed; a move produces a new State.
//   - Extensions never yields the receiver itself, is finite, deterministic
//     in order, and restartable: ranging twice yields an equivalent set.
//   - FailFast()==true must imply no solution is reachable from the state.
//     FailFast()==false promises nothing. Engines that skip the test are
//     still correct, only slower.
//   - Key must cover everything that distinguishes the configuration within
//     a single search; equality of Keys and visited-set membership agree by
//     construction.
//
// Errors
//
//   - ErrMalformedInput — wrapped by variant constructors on invalid
//     dimensions, illegal characters, or inconsistent counts. Surfaces before
//     any engine sees the state; engines never validate variant internals.
package puzzle
