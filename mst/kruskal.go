package mst

import (
	"sort"

	"github.com/SarvikIIT/algokit/core"
	"github.com/SarvikIIT/algokit/dsu"
)

// kruskal merges components over the weight-sorted edge list, using a
// disjoint-set union to skip edges that would close a cycle.
func kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	// 1) Map vertex IDs onto dense indices for the union-find.
	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	sets, err := dsu.New(len(vertices))
	if err != nil {
		return nil, 0, err
	}

	// 2) Sort edges by weight, edge ID as a deterministic tie-break.
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}

		return edges[i].ID < edges[j].ID
	})

	// 3) Greedy merge: keep every edge that joins two components.
	tree := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		if e.From == e.To {
			continue // self-loops never belong to a tree
		}
		merged, uerr := sets.Union(index[e.From], index[e.To])
		if uerr != nil {
			return nil, 0, uerr
		}
		if !merged {
			continue
		}
		tree = append(tree, *e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	// 4) Fewer than V-1 tree edges means at least two components.
	if len(tree) != len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
