package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// Comparison pairs the two engines' results on one initial state.
//
// When both runs solve, BFS.Moves is the minimum and DFS.Moves is whatever
// its branch order produced; the Stats columns (MaxFrontier in particular)
// show what each guarantee costs.
type Comparison struct {
	BFS *Result
	DFS *Result
}

// Compare races both engines on the same initial state, one goroutine per
// strategy, and returns both results. Each run owns its visited set and
// arena, and states are immutable after construction, so the runs share
// nothing mutable. An error from either engine cancels the sibling via the
// group context and is returned.
func Compare(initial puzzle.State, opts ...Option) (*Comparison, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	shared := make([]Option, 0, len(opts)+1)
	shared = append(shared, opts...)
	shared = append(shared, WithContext(ctx))

	var c Comparison
	g.Go(func() error {
		res, err := BFS(initial, shared...)
		if err != nil {
			return err
		}
		c.BFS = res
		return nil
	})
	g.Go(func() error {
		res, err := DFS(initial, shared...)
		if err != nil {
			return err
		}
		c.DFS = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}
