package mst

import (
	"container/heap"

	"github.com/SarvikIIT/algokit/core"
)

// prim grows the tree outward from root, always pulling the cheapest
// edge that leaves the tree so far.
func prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	inTree := make(map[string]bool, g.VertexCount())
	pq := &edgePQ{}
	heap.Init(pq)

	// absorb marks v as part of the tree and pushes its frontier edges.
	absorb := func(v string) error {
		inTree[v] = true
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if !inTree[e.To] {
				heap.Push(pq, *e)
			}
		}

		return nil
	}

	if err := absorb(root); err != nil {
		return nil, 0, err
	}

	tree := make([]core.Edge, 0, g.VertexCount()-1)
	var total int64
	for pq.Len() > 0 && len(tree) < g.VertexCount()-1 {
		e := heap.Pop(pq).(core.Edge)
		if inTree[e.To] {
			continue // stale entry, both endpoints joined meanwhile
		}
		tree = append(tree, e)
		total += e.Weight
		if err := absorb(e.To); err != nil {
			return nil, 0, err
		}
	}

	if len(tree) != g.VertexCount()-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgePQ is a min-heap of oriented edges ordered by weight, edge ID as
// a deterministic tie-break.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].ID < pq[j].ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
