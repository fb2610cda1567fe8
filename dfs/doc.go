// Package dfs implements depth-first search over a core.Graph, along with
// the two classic DFS by-products: cycle detection and topological sorting.
//
// DFS(g, startID, opts...) traverses from a single root, or the whole forest
// with WithFullTraversal. Pre-order (OnVisit) and post-order (OnExit) hooks
// may abort the traversal by returning an error. Neighbor expansion follows
// core's sorted edge order, so results are deterministic.
//
// HasCycle reports whether the graph contains a cycle, using three-color
// marking on directed graphs and parent-skipping on undirected ones.
//
// TopologicalSort returns a dependency order of a directed acyclic graph,
// or ErrCycleDetected when no such order exists.
//
// Complexity: O(V + E) time, O(V) memory for each entry point.
package dfs
