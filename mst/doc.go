// Package mst computes a minimum spanning tree (or forest check) of a
// connected, weighted, undirected core.Graph.
//
// Two classic algorithms are provided and selected through Options:
//
//   - Kruskal — sort all edges by weight and greedily merge components
//     with a disjoint-set union. O(E log E) time, O(V) extra space.
//   - Prim — grow the tree from a root vertex with a min-heap of
//     frontier edges. O(E log V) time, O(V+E) extra space.
//
// Both return the chosen tree edges plus their total weight:
//
//	edges, total, err := mst.Compute(g)                       // Kruskal
//	edges, total, err := mst.Compute(g, mst.WithPrim("A"))    // Prim from A
//
// The input graph must be weighted and undirected; a graph whose
// vertices do not all connect yields ErrDisconnected.
package mst
