// Package solver provides the two uninformed search engines over the
// puzzle.State contract: breadth-first (shortest solution) and depth-first
// (first solution found), plus a concurrent comparison runner.
//
// What
//
//   - BFS(initial, opts...): explore states level by level; the returned
//     solution uses the minimum possible number of moves.
//   - DFS(initial, opts...): explore one branch to completion before
//     trying siblings; returns the first solution found, of any length.
//   - Solve(initial, opts...): route to either engine via WithStrategy.
//   - Compare(initial, opts...): run both engines concurrently on the same
//     initial state and return both results side by side.
//   - Result carries the solution path (initial through solved, inclusive),
//     the move count, and Stats counters exposing the trade-off between the
//     engines: expanded, generated, pruned, peak frontier, deepest state.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (a state is admitted to the frontier)
//   - OnExpand  (a state is popped for its goal and prune tests; may
//     abort with an error)
//   - OnPrune   (the fail-fast test discards a state)
//
// Why
//
//   - BFS guarantees optimality but holds an entire depth level in memory;
//     DFS holds one active branch but returns arbitrary-length solutions.
//     Running both against the same states makes the asymmetry measurable,
//     which is the point of this module.
//   - Both engines speak only the four-operation puzzle.State contract, so
//     a new puzzle variant plugs in without touching this package.
//
// Mechanics
//
//   - A visited set of canonical keys is seeded with the initial state's
//     key; BFS marks keys at enqueue time, DFS at push time. No state is
//     admitted twice, which with a finite state space guarantees
//     termination.
//   - Every discovered state lives in an arena indexed by integer handles;
//     each node stores its parent's handle. Path reconstruction walks
//     handles backward from the solved node and reverses, identically for
//     both engines.
//   - DFS pushes extensions in reverse yield order so the first extension
//     yielded is the first explored. Which (generally non-shortest)
//     solution DFS returns follows from that order alone.
//   - FailFast is a sound necessary-condition test supplied by the puzzle:
//     true means no solution is reachable, so the branch is discarded
//     unexpanded. Disabling it (WithPruning(false)) only slows the search.
//   - "No solution" is a normal outcome, not an error: Solved is false,
//     Path is nil, and the returned error is nil.
//
// Complexity (S = reachable states, B = branching factor, D = solution depth)
//
//   - Time:   O(S·B) state generations worst case for either engine.
//   - Memory: BFS O(B^D) frontier worst case; DFS O(B·D). The arena
//     additionally retains every admitted state until the run ends.
//
// Usage
//
//	ladder, err := wordladder.New("cat", "dog", words)
//	if err != nil {
//	    // wraps puzzle.ErrMalformedInput
//	}
//	res, err := solver.BFS(ladder)
//	if err != nil {
//	    // ErrNilState, ErrOptionViolation, ctx error, or a hook error
//	}
//	if res.Solved {
//	    for _, s := range res.Path {
//	        fmt.Println(s)
//	    }
//	}
//
// Options
//
//   - DefaultOptions(): background Context, StrategyBFS, pruning on, no
//     depth limit, lazy prune, no-op hooks.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithStrategy(s):       route Solve to bfs or dfs.
//   - WithMaxDepth(d):       stop exploring beyond depth d (>0); 0 = no limit.
//   - WithPruning(enabled):  toggle the FailFast test.
//   - WithEagerPrune():      BFS applies FailFast before enqueue instead of
//     at dequeue, saving frontier memory; DFS ignores it.
//   - WithOnEnqueue(fn):     hook when a state is admitted.
//   - WithOnExpand(fn):      hook when a state is popped; error aborts.
//   - WithOnPrune(fn):       hook when a state is discarded.
//
// Errors
//
//   - ErrNilState          if the initial state is nil.
//   - ErrOptionViolation   if an invalid Option is supplied.
//   - ErrUnknownStrategy   from ParseStrategy on an unrecognized name.
//   - The context's error  if cancellation or deadline fires mid-run.
//   - Wrapped user-supplied hook errors from OnExpand.
package solver
