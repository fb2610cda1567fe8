package dfs

import (
	"fmt"

	"github.com/SarvikIIT/algokit/core"
)

// TopologicalSort returns the vertices of a directed acyclic graph in
// dependency order: for every edge u→v, u precedes v in the result.
//
// The order is produced by reversed DFS post-order with roots taken in
// sorted ID order, so it is deterministic for a given graph.
//
// Returns ErrGraphNil for a nil graph, ErrNotDirected for undirected graphs,
// and ErrCycleDetected when no topological order exists.
// Complexity: O(V + E)
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))

	var visit func(id string) error
	visit = func(id string) error {
		state[id] = gray

		edges, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, e := range edges {
			switch state[e.To] {
			case white:
				if err = visit(e.To); err != nil {
					return err
				}
			case gray:
				// Back edge: the graph is cyclic.
				return fmt.Errorf("%w: via edge %s→%s", ErrCycleDetected, id, e.To)
			}
		}

		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, v := range verts {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse the post-order in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
