package solver

import (
	"fmt"
	"time"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// dfsWalker encapsulates mutable depth-first state for one solve.
type dfsWalker struct {
	opts    Options
	arena   arena
	stack   []int // arena handles, LIFO
	visited map[string]struct{}
	res     *Result
}

// DFS explores one branch of the state space to completion (or failure)
// before trying siblings, applying any number of functional Options. The
// first solved state found ends the search; nothing bounds its depth, and
// which solution is found follows entirely from the order Extensions yields
// moves. Exhausting the space without a solution yields a Result with
// Solved false and a nil error.
func DFS(initial puzzle.State, opts ...Option) (*Result, error) {
	// 1. Validate input state
	if initial == nil {
		return nil, ErrNilState
	}

	// 2. Apply options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Prepare walker and run
	w := &dfsWalker{
		opts:    o,
		visited: make(map[string]struct{}),
		res:     &Result{Strategy: StrategyDFS, Moves: -1},
	}

	start := time.Now()
	err := w.run(initial)
	w.res.Stats.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}
	return w.res, nil
}

// run seeds the stack with the initial state and processes it to exhaustion,
// solution, error, or cancellation.
func (w *dfsWalker) run(initial puzzle.State) error {
	w.visited[initial.Key()] = struct{}{}
	w.push(initial, -1, 0)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop the deepest admitted state
		h := w.pop()
		n := w.arena.nodes[h]
		w.res.Stats.Expanded++
		if err := w.opts.OnExpand(n.state, n.depth); err != nil {
			return fmt.Errorf("solver: OnExpand hook at depth %d: %w", n.depth, err)
		}

		// 3. Goal test
		if n.state.IsSolved() {
			w.res.Solved = true
			w.res.Path = w.arena.path(h)
			w.res.Moves = len(w.res.Path) - 1
			return nil
		}

		// 4. Discard the whole branch on a failed fail-fast test
		if w.opts.Pruning && n.state.FailFast() {
			w.res.Stats.Pruned++
			w.opts.OnPrune(n.state, n.depth)
			continue
		}

		// 5. Depth limit: never admit states beyond it
		next := n.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}

		// 6. Mark unseen extensions visited at push time and push them in
		// reverse yield order, so the first yielded is the first explored
		var children []puzzle.State
		for s := range n.state.Extensions() {
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
			w.visited[key] = struct{}{}
			children = append(children, s)
		}
		for i := len(children) - 1; i >= 0; i-- {
			w.push(children[i], h, next)
		}
	}
	return nil
}

// push admits a state to the arena and the stack.
func (w *dfsWalker) push(s puzzle.State, parent, depth int) {
	h := w.arena.add(s, parent, depth)
	w.res.Stats.Discovered++
	if depth > w.res.Stats.MaxDepth {
		w.res.Stats.MaxDepth = depth
	}
	w.opts.OnEnqueue(s, depth)
	w.stack = append(w.stack, h)
	if len(w.stack) > w.res.Stats.MaxFrontier {
		w.res.Stats.MaxFrontier = len(w.stack)
	}
}

// pop removes and returns the top handle.
func (w *dfsWalker) pop() int {
	h := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return h
}
