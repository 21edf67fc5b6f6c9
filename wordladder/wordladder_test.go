package wordladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenjie/puzzlesearch/puzzle"
	"github.com/chenjie/puzzlesearch/solver"
	"github.com/chenjie/puzzlesearch/wordladder"
)

// extensionWords collects the current words of every extension, in yield order.
func extensionWords(p *wordladder.Puzzle) []string {
	var got []string
	for s := range p.Extensions() {
		got = append(got, s.(*wordladder.Puzzle).Word())
	}
	return got
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty start", "", "dog"},
		{"empty target", "cat", ""},
		{"uppercase start", "Cat", "dog"},
		{"digit in target", "cat", "d0g"},
		{"length mismatch", "cat", "geese"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wordladder.New(tc.from, tc.to, []string{"cat", "dog"})
			assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}

	p, err := wordladder.New("cat", "dog", []string{"cat", "cot", "cog", "dog"})
	require.NoError(t, err)
	assert.Equal(t, "cat", p.Word())
	assert.Equal(t, "dog", p.Target())
}

func TestParse(t *testing.T) {
	p, err := wordladder.Parse("cat dog\n cat cot cog dog\n")
	require.NoError(t, err)
	assert.Equal(t, "cat", p.Word())
	assert.Equal(t, "dog", p.Target())

	_, err = wordladder.Parse("cat")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = wordladder.Parse("   ")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestFailFast(t *testing.T) {
	stuck, err := wordladder.New("cat", "dog", []string{"cat", "cot", "cog"})
	require.NoError(t, err)
	assert.True(t, stuck.FailFast(), "target outside the word set is unreachable")

	open, err := wordladder.New("cat", "dog", []string{"cat", "cot", "cog", "dog"})
	require.NoError(t, err)
	assert.False(t, open.FailFast())

	// a ladder that starts solved is never pruned, whatever the set holds
	done, err := wordladder.New("dog", "dog", nil)
	require.NoError(t, err)
	assert.True(t, done.IsSolved())
	assert.False(t, done.FailFast())
}

func TestExtensions_OneLetterNeighbours(t *testing.T) {
	p, err := wordladder.New("cat", "dog",
		[]string{"cat", "bat", "cot", "cab", "dog"})
	require.NoError(t, err)

	// positions scan left to right, candidate letters a-z; "dog" differs in
	// three letters and must not appear, nor may the current word itself.
	assert.Equal(t, []string{"bat", "cot", "cab"}, extensionWords(p))
}

func TestExtensions_EmptySetYieldsNothing(t *testing.T) {
	p, err := wordladder.New("cat", "dog", nil)
	require.NoError(t, err)
	assert.Empty(t, extensionWords(p))
}

func TestKeyIncludesTarget(t *testing.T) {
	p, err := wordladder.New("cat", "dog", []string{"cat", "dog"})
	require.NoError(t, err)
	assert.Equal(t, "cat -> dog", p.Key())
	assert.Equal(t, "cat -> dog", p.String())
}

func TestSolve_ShortestLadder(t *testing.T) {
	p, err := wordladder.New("cat", "dog", []string{"cat", "cot", "cog", "dog"})
	require.NoError(t, err)

	res, err := solver.BFS(p)
	require.NoError(t, err)
	require.True(t, res.Solved)
	assert.Equal(t, 3, res.Moves)

	var rungs []string
	for _, s := range res.Path {
		rungs = append(rungs, s.(*wordladder.Puzzle).Word())
	}
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, rungs)
}

func TestSolve_DetourDoesNotLengthenBFS(t *testing.T) {
	p, err := wordladder.New("cat", "dog",
		[]string{"cat", "bat", "bag", "bog", "dog", "cot", "cog"})
	require.NoError(t, err)

	cmp, err := solver.Compare(p)
	require.NoError(t, err)
	assert.Equal(t, 3, cmp.BFS.Moves, "BFS takes the direct ladder")
	assert.Equal(t, 4, cmp.DFS.Moves, "DFS commits to the bat/bag/bog detour")
}
