package solver

import "github.com/chenjie/puzzlesearch/puzzle"

// node is one arena entry: a discovered state, the handle of the node that
// discovered it, and its move depth.
type node struct {
	state  puzzle.State
	parent int // arena handle; -1 for the root
	depth  int
}

// arena owns every node discovered during one solve. Handles are plain
// indices and parents are handles, never back-references, so the structure
// is cycle-free and reconstruction is a backward index walk.
type arena struct {
	nodes []node
}

// add admits a state discovered from parent at depth d, returning its handle.
func (a *arena) add(s puzzle.State, parent, depth int) int {
	a.nodes = append(a.nodes, node{state: s, parent: parent, depth: depth})
	return len(a.nodes) - 1
}

// path rebuilds the state sequence from the root to terminal by following
// parent handles backward and reversing in place. The walk knows nothing
// about which engine discovered the nodes.
func (a *arena) path(terminal int) []puzzle.State {
	var states []puzzle.State
	for h := terminal; h >= 0; h = a.nodes[h].parent {
		states = append(states, a.nodes[h].state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	return states
}
