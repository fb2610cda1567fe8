package dfs

import (
	"fmt"

	"github.com/SarvikIIT/algokit/core"
)

// HasCycle reports whether g contains a cycle.
//
// Directed graphs use three-color marking: a gray→gray edge is a back edge
// and closes a cycle. Undirected graphs treat any visited neighbor other
// than the immediate parent as a cycle; self-loops always count.
// Complexity: O(V + E)
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	state := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] != white {
			continue
		}
		found, err := cycleVisit(g, v, "", state)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// cycleVisit recursively explores id and reports whether a cycle closes
// somewhere in its subtree.
func cycleVisit(g *core.Graph, id, parent string, state map[string]int) (bool, error) {
	state[id] = gray

	edges, err := g.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}

	// An undirected edge back to the parent is consumed once, so a parallel
	// A-B edge still registers as a cycle.
	parentSkipped := false

	for _, e := range edges {
		if e.From == e.To {
			return true, nil
		}
		if !e.Directed && e.To == parent && !parentSkipped {
			parentSkipped = true

			continue
		}

		switch state[e.To] {
		case white:
			found, verr := cycleVisit(g, e.To, id, state)
			if verr != nil {
				return false, verr
			}
			if found {
				return true, nil
			}
		case gray:
			return true, nil
		default:
			// Black in a directed graph: a forward/cross edge, no cycle.
			// In an undirected graph black neighbors are unreachable here
			// because components are explored exhaustively.
			if !e.Directed {
				return true, nil
			}
		}
	}

	state[id] = black

	return false, nil
}
