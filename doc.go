// Package puzzlesearch is your in-memory playground for solving combinatorial
// puzzles — one uninformed search core, four interchangeable puzzle plug-ins,
// and a head-to-head comparison of the two classic traversal strategies.
//
// 🚀 What is puzzlesearch?
//
//	A small, focused engine that brings together:
//		• One contract: IsSolved / FailFast / Extensions / Key — all any puzzle needs
//		• Two engines: breadth-first (shortest solution) and depth-first (first solution)
//		• Path reconstruction: parent-handle walks, identical for both engines
//		• Four plug-ins: Sudoku, grid peg solitaire, the sliding M×N puzzle, word ladders
//		• A comparison runner that races both engines and lines up their statistics
//
// ✨ Why choose puzzlesearch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest trade-offs – BFS buys optimality with frontier memory, DFS takes
//     whatever its branch order finds first; the Stats counters show the price
//   - Extensible – add custom hooks (OnEnqueue, OnExpand, OnPrune) for custom logic,
//     plug in a new puzzle without touching the engines
//
// Under the hood, everything is organized per concern:
//
//	puzzle/     — the State contract every variant implements + MalformedInput
//	solver/     — BFS, DFS, Solve dispatcher, Compare runner, options & stats
//	sudoku/     — n×n Sudoku boards (first-empty-cell candidate moves)
//	pegsol/     — grid peg solitaire (jumps; point-symmetric boards share a key)
//	mnpuzzle/   — sliding M×N tiles (blank swaps; parity fail-fast)
//	wordladder/ — one-letter word transformations over a fixed word set
//	cmd/        — puzzlesolve (CLI) and puzzled (HTTP + WebSocket service)
//
// Quick ASCII example:
//
//	cat → cot → cog → dog
//
//	is the shortest ladder from "cat" to "dog" over {cat, cot, cog, dog},
//	and the one BFS is guaranteed to return.
//
// Deliberately out of scope: informed search (A*, heuristics). The module
// exists to characterize what uninformed BFS and DFS trade against each other,
// so nothing here ever consults a heuristic.
//
//	go get github.com/chenjie/puzzlesearch
package puzzlesearch
