package solver_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenjie/puzzlesearch/puzzle"
	"github.com/chenjie/puzzlesearch/solver"
)

func TestCompare_NilState(t *testing.T) {
	cmp, err := solver.Compare(nil)
	assert.Nil(t, cmp)
	assert.ErrorIs(t, err, solver.ErrNilState)
}

func TestCompare_OptionViolation(t *testing.T) {
	cmp, err := solver.Compare(diamondMaze().at("A"), solver.WithMaxDepth(-1))
	assert.Nil(t, cmp)
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

// TestCompare_BothSolve races the engines on the diamond space and checks the
// central property head-on: BFS's answer is minimal, DFS's is whatever its
// branch order found, and BFS never needs more moves than DFS.
func TestCompare_BothSolve(t *testing.T) {
	cmp, err := solver.Compare(diamondMaze().at("A"))
	require.NoError(t, err)
	require.NotNil(t, cmp.BFS)
	require.NotNil(t, cmp.DFS)

	assert.True(t, cmp.BFS.Solved)
	assert.True(t, cmp.DFS.Solved)
	assert.Equal(t, solver.StrategyBFS, cmp.BFS.Strategy)
	assert.Equal(t, solver.StrategyDFS, cmp.DFS.Strategy)
	assert.Equal(t, 2, cmp.BFS.Moves)
	assert.Equal(t, 4, cmp.DFS.Moves)
	assert.LessOrEqual(t, cmp.BFS.Moves, cmp.DFS.Moves)
}

func TestCompare_NoSolution(t *testing.T) {
	m := &maze{edges: map[string][]string{"A": {"B"}}}
	cmp, err := solver.Compare(m.at("A"))
	require.NoError(t, err)
	assert.False(t, cmp.BFS.Solved)
	assert.False(t, cmp.DFS.Solved)
	assert.Equal(t, -1, cmp.BFS.Moves)
	assert.Equal(t, -1, cmp.DFS.Moves)
}

// TestCompare_MemoryAsymmetry builds a complete binary tree with the goal at
// the leaf both engines reach last: the BFS frontier must hold an entire
// level (64 states) while the DFS stack holds one branch plus pending
// siblings. This is the trade-off the comparison exists to measure.
func TestCompare_MemoryAsymmetry(t *testing.T) {
	m := &maze{
		edges: make(map[string][]string, 64),
		goal:  map[string]bool{"n127": true},
	}
	for i := 1; i < 64; i++ {
		n := "n" + strconv.Itoa(i)
		m.edges[n] = []string{"n" + strconv.Itoa(2*i), "n" + strconv.Itoa(2*i+1)}
	}

	cmp, err := solver.Compare(m.at("n1"))
	require.NoError(t, err)
	assert.True(t, cmp.BFS.Solved)
	assert.True(t, cmp.DFS.Solved)
	assert.Equal(t, 6, cmp.BFS.Moves)
	assert.Greater(t, cmp.BFS.Stats.MaxFrontier, cmp.DFS.Stats.MaxFrontier,
		"BFS holds a whole level; DFS one active path plus siblings")
}

// TestCompare_HookErrorPropagates verifies a failing hook fails the
// comparison as a whole, whichever engine trips it first.
func TestCompare_HookErrorPropagates(t *testing.T) {
	cmp, err := solver.Compare(diamondMaze().at("A"),
		solver.WithOnExpand(func(s puzzle.State, _ int) error {
			if s.Key() == "B2" {
				return errors.New("abort at B2")
			}
			return nil
		}),
	)
	assert.Nil(t, cmp)
	assert.ErrorContains(t, err, "abort at B2")
}

func TestCompare_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmp, err := solver.Compare(chainMaze(500).at("A0"), solver.WithContext(ctx))
	assert.Nil(t, cmp)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCompare_SharedStateUntouched reruns a comparison on the same initial
// state and expects identical outcomes: runs own their bookkeeping, states
// stay immutable.
func TestCompare_SharedStateUntouched(t *testing.T) {
	m := diamondMaze()
	first, err := solver.Compare(m.at("A"))
	require.NoError(t, err)
	second, err := solver.Compare(m.at("A"))
	require.NoError(t, err)
	assert.Equal(t, pathNames(first.BFS.Path), pathNames(second.BFS.Path))
	assert.Equal(t, pathNames(first.DFS.Path), pathNames(second.DFS.Path))
}
