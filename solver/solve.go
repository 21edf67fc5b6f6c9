package solver

import (
	"fmt"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Solve routes the initial state to the engine selected by WithStrategy,
// defaulting to BFS. It exists for callers that pick the strategy at
// runtime (a flag, a query parameter); BFS and DFS remain the direct entry
// points.
func Solve(initial puzzle.State, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	switch o.Strategy {
	case StrategyBFS:
		return BFS(initial, opts...)
	case StrategyDFS:
		return DFS(initial, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
}
