// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances (hop counts), parent links, and visit
// order.
//
// BFS explores vertices in increasing distance from a start vertex. Since hop
// counts ignore weights, weighted graphs are rejected with ErrWeightedGraph —
// use the dijkstra package for those.
//
// Options (functional):
//
//   - WithContext(ctx)        cancellation between dequeues
//   - WithMaxDepth(d)         stop expanding beyond depth d (0 = unlimited)
//   - WithOnVisit(fn)         hook per visited vertex; an error aborts
//   - WithFilterNeighbor(fn)  skip edges by returning false
//
// Determinism: neighbors are expanded in core's sorted edge order, so Order
// is reproducible for a given graph.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
