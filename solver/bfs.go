package solver

import (
	"fmt"
	"time"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// bfsWalker encapsulates mutable breadth-first state for one solve.
type bfsWalker struct {
	opts    Options
	arena   arena
	queue   []int // arena handles, FIFO
	visited map[string]struct{}
	res     *Result
}

// BFS explores the state space level by level from initial, applying any
// number of functional Options. When a solution exists, the returned path
// uses the minimum possible number of moves: BFS exhausts depth d entirely
// before any depth d+1 state is popped, so the first solved state found is
// a nearest one. Exhausting the space without a solution yields a Result
// with Solved false and a nil error.
func BFS(initial puzzle.State, opts ...Option) (*Result, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &bfsWalker{
		opts:    o,
		visited: make(map[string]struct{}),
		res:     &Result{Strategy: StrategyBFS, Moves: -1},
	}

	start := time.Now()
	err := w.run(initial)
	w.res.Stats.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}
	return w.res, nil
}

// run seeds the queue with the initial state and processes it to exhaustion,
// solution, error, or cancellation.
func (w *bfsWalker) run(initial puzzle.State) error {
	w.admit(initial, initial.Key(), -1, 0)
	for len(w.queue) > 0 {
		// cancellation check (once per iteration)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		h := w.dequeue()
		n := w.arena.nodes[h]
		w.res.Stats.Expanded++
		if err := w.opts.OnExpand(n.state, n.depth); err != nil {
			return fmt.Errorf("solver: OnExpand hook at depth %d: %w", n.depth, err)
		}
		if n.state.IsSolved() {
			w.res.Solved = true
			w.res.Path = w.arena.path(h)
			w.res.Moves = len(w.res.Path) - 1
			return nil
		}
		if w.opts.Pruning && !w.opts.EagerPrune && n.state.FailFast() {
			w.res.Stats.Pruned++
			w.opts.OnPrune(n.state, n.depth)
			continue
		}
		if err := w.expand(h, n); err != nil {
			return err
		}
	}
	return nil
}

// expand enqueues every unseen extension of n at depth n.depth+1, honoring
// the depth limit.
func (w *bfsWalker) expand(h int, n node) error {
	next := n.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for s := range n.state.Extensions() {
		// cancellation check inside extension iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.res.Stats.Generated++
		key := s.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		w.admit(s, key, h, next)
	}
	return nil
}

// admit marks key visited at enqueue time, which keeps any state from being
// enqueued twice via different parents and preserves the shortest-path
// property (the first discovery of a state is a nearest one). Under eager
// pruning a failing state is discarded here, before it costs frontier space.
func (w *bfsWalker) admit(s puzzle.State, key string, parent, depth int) {
	w.visited[key] = struct{}{}
	if w.opts.Pruning && w.opts.EagerPrune && s.FailFast() {
		w.res.Stats.Pruned++
		w.opts.OnPrune(s, depth)
		return
	}
	h := w.arena.add(s, parent, depth)
	w.res.Stats.Discovered++
	if depth > w.res.Stats.MaxDepth {
		w.res.Stats.MaxDepth = depth
	}
	w.opts.OnEnqueue(s, depth)
	w.queue = append(w.queue, h)
	if len(w.queue) > w.res.Stats.MaxFrontier {
		w.res.Stats.MaxFrontier = len(w.queue)
	}
}

// dequeue pops the front handle.
func (w *bfsWalker) dequeue() int {
	h := w.queue[0]
	w.queue = w.queue[1:]
	return h
}
