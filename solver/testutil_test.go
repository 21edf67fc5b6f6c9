// Package solver_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal:
// a hand-built state space gives each test exact control over branching,
// goals, and dead ends without dragging a real puzzle in.
package solver_test

import (
	"iter"
	"strconv"

	"github.com/chenjie/puzzlesearch/puzzle"
)

// maze is a tiny hand-built state space: nodes are names, edges are one-move
// extensions in declaration order, and the goal/dead sets drive IsSolved and
// FailFast. Every state of one maze shares these tables and never writes them.
type maze struct {
	edges map[string][]string
	goal  map[string]bool
	dead  map[string]bool
}

// at returns the maze state standing on the named node.
func (m *maze) at(name string) mazeState {
	return mazeState{m: m, name: name}
}

type mazeState struct {
	m    *maze
	name string
}

func (s mazeState) IsSolved() bool { return s.m.goal[s.name] }

func (s mazeState) FailFast() bool { return s.m.dead[s.name] }

func (s mazeState) Extensions() iter.Seq[puzzle.State] {
	return func(yield func(puzzle.State) bool) {
		for _, next := range s.m.edges[s.name] {
			if !yield(s.m.at(next)) {
				return
			}
		}
	}
}

func (s mazeState) Key() string { return s.name }

func (s mazeState) String() string { return s.name }

// pathNames flattens a result path into its state keys.
func pathNames(path []puzzle.State) []string {
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.Key()
	}
	return names
}

// diamondMaze builds the canonical shortest-vs-first space:
//
//	       A
//	      / \
//	    B1   C1
//	    |     |
//	    B2   GOAL
//	    |
//	    B3
//	    |
//	   GOAL
//
// The B branch is yielded first, so DFS walks four moves to the goal while
// BFS finds the two-move route through C1.
func diamondMaze() *maze {
	return &maze{
		edges: map[string][]string{
			"A":  {"B1", "C1"},
			"B1": {"B2"},
			"B2": {"B3"},
			"B3": {"GOAL"},
			"C1": {"GOAL"},
		},
		goal: map[string]bool{"GOAL": true},
	}
}

// chainMaze builds A0 → A1 → … → A<n>, with the last node the goal.
func chainMaze(n int) *maze {
	m := &maze{
		edges: make(map[string][]string, n),
		goal:  map[string]bool{"A" + strconv.Itoa(n): true},
	}
	for i := 0; i < n; i++ {
		m.edges["A"+strconv.Itoa(i)] = []string{"A" + strconv.Itoa(i+1)}
	}
	return m
}
