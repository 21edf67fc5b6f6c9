// Package solver provides tunable options and error definitions for the
// search engines over puzzle.State.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Sentinel errors for solver execution.
var (
	// ErrNilState is returned when a nil initial state is passed.
	ErrNilState = errors.New("solver: initial state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Strategy selects which engine explores the state space.
type Strategy int

const (
	// StrategyBFS explores level by level and returns a shortest solution.
	StrategyBFS Strategy = iota

	// StrategyDFS explores one branch to completion before its siblings and
	// returns the first solution found, not necessarily a shortest one.
	StrategyDFS
)

// String returns the lowercase engine name.
func (s Strategy) String() string {
	switch s {
	case StrategyBFS:
		return "bfs"
	case StrategyDFS:
		return "dfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "bfs" and "dfs" (any case) to their Strategy values.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return StrategyBFS, nil
	case "dfs":
		return StrategyDFS, nil
	default:
		return 0, fmt.Errorf("%w: %q (want \"bfs\" or \"dfs\")", ErrUnknownStrategy, name)
	}
}

// Option configures solver behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when an engine is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by both engines.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy routes Solve to an engine. BFS and DFS ignore it.
	Strategy Strategy

	// MaxDepth, if > 0, stops exploring beyond this move depth; states
	// deeper than the limit are never admitted, so a solution beyond it is
	// reported as "no solution". A value of 0 disables the limit.
	MaxDepth int

	// Pruning toggles the FailFast test. With pruning off both engines
	// remain correct, only slower.
	Pruning bool

	// EagerPrune makes BFS apply FailFast before enqueue rather than at
	// dequeue, trading extra test calls for frontier memory. DFS ignores it.
	EagerPrune bool

	// OnEnqueue is called when a state is admitted to the frontier.
	OnEnqueue func(s puzzle.State, depth int)

	// OnExpand is called when a state is popped for its goal and prune
	// tests. If it returns an error, the solve aborts and propagates it.
	OnExpand func(s puzzle.State, depth int) error

	// OnPrune is called when the FailFast test discards a state.
	OnPrune func(s puzzle.State, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options reproducing the plain engines:
//   - Context.Background()
//   - StrategyBFS
//   - no depth limit (MaxDepth == 0)
//   - pruning on, applied lazily (at pop)
//   - no-op hooks
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Strategy:  StrategyBFS,
		MaxDepth:  0,
		Pruning:   true,
		OnEnqueue: func(puzzle.State, int) {},
		OnExpand:  func(puzzle.State, int) error { return nil },
		OnPrune:   func(puzzle.State, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy routes Solve to the given engine.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyBFS, StrategyDFS:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: strategy %d is not known", ErrOptionViolation, int(s))
		}
	}
}

// WithMaxDepth stops the search at the given move depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithPruning toggles the FailFast test for both engines.
func WithPruning(enabled bool) Option {
	return func(o *Options) {
		o.Pruning = enabled
	}
}

// WithEagerPrune makes BFS test FailFast before enqueue instead of at
// dequeue. DFS ignores it.
func WithEagerPrune() Option {
	return func(o *Options) {
		o.EagerPrune = true
	}
}

// WithOnEnqueue registers a callback to run when a state is admitted.
func WithOnEnqueue(fn func(s puzzle.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run when a state is popped;
// returning an error from this callback stops the solve.
func WithOnExpand(fn func(s puzzle.State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPrune registers a callback to run when a state is discarded by the
// FailFast test.
func WithOnPrune(fn func(s puzzle.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// Stats aggregates engine counters; Compare lines them up to expose the
// optimality-versus-memory trade-off between the strategies.
type Stats struct {
	// Expanded counts states popped from the frontier and tested.
	Expanded int

	// Generated counts states yielded by Extensions calls.
	Generated int

	// Discovered counts unique states admitted to the arena.
	Discovered int

	// Pruned counts states discarded by the FailFast test.
	Pruned int

	// MaxFrontier is the peak frontier length (queue for BFS, stack for DFS).
	MaxFrontier int

	// MaxDepth is the depth of the deepest admitted state.
	MaxDepth int

	// Duration is the wall time of the solve.
	Duration time.Duration
}

// Result is the outcome of one solve.
//
// A solve that exhausts the space without reaching a solved state is not an
// error: Solved is false, Path is nil, Moves is -1, and the engine returns
// a nil error alongside it.
type Result struct {
	// Strategy identifies the engine that produced this result.
	Strategy Strategy

	// Solved reports whether a solution path was found.
	Solved bool

	// Path holds the states from the initial to the solved one, inclusive,
	// each reachable from its predecessor by exactly one legal move.
	Path []puzzle.State

	// Moves is len(Path)-1 when solved, -1 otherwise.
	Moves int

	// Stats carries the engine counters for this run.
	Stats Stats
}
