package mst

import (
	"github.com/SarvikIIT/algokit/core"
)

// Compute returns the edges of a minimum spanning tree of g together
// with their total weight. The algorithm defaults to Kruskal; pass
// WithPrim(root) to grow from a specific vertex instead.
//
// Returns:
//   - ErrGraphNil / ErrEmptyGraph / ErrDirectedGraph / ErrUnweightedGraph
//     for invalid inputs,
//   - ErrRootNotFound when the Prim root is absent,
//   - ErrDisconnected when the graph has no spanning tree.
//
// Complexity: Kruskal O(E log E), Prim O(E log V).
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	if err := validate(g); err != nil {
		return nil, 0, err
	}

	switch o.method {
	case methodPrim:
		return prim(g, o.root)
	default:
		return kruskal(g)
	}
}

// validate rejects graphs a spanning tree is not defined on.
func validate(g *core.Graph) error {
	switch {
	case g == nil:
		return ErrGraphNil
	case g.Directed():
		return ErrDirectedGraph
	case !g.Weighted():
		return ErrUnweightedGraph
	case g.VertexCount() == 0:
		return ErrEmptyGraph
	}

	return nil
}
