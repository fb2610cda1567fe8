// Package algokit is a library of classical algorithms and data structures
// for competitive programming and everyday engineering — from range trees
// and union-find to shortest paths, number theory and dynamic programming.
//
// 🚀 What is algokit?
//
//	A typed, test-backed collection of independent building blocks:
//		• Data structures: segment tree with lazy propagation, DSU, BST
//		• Graphs: core primitives + BFS, DFS, Dijkstra, Bellman–Ford, Kruskal/Prim
//		• Sorting: quick (3 flavors), merge, heap, insertion, selection, bubble
//		• Searching: binary (+bounds, search-on-answer, peak), ternary, linear
//		• Number theory: sieves, primality, GCD/LCM, modular arithmetic, combinatorics
//		• Dynamic programming: coin change, LIS, edit distance, grid paths & friends
//
// ✨ Why choose algokit?
//
//   - Each package is self-contained – import only what you need
//   - Explicit errors over silent sentinels – no -1 surprises
//   - Generics where they pay off – sort and search any ordered type
//   - Pure Go – no cgo, no hidden deps
//
// Package map:
//
//	segtree/     — range-minimum tree with lazy range-additive updates (the core)
//	dsu/         — disjoint set union with path compression & union by rank
//	bst/         — generic binary search tree
//	core/        — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/, dfs/   — traversals, cycle detection, topological sort
//	dijkstra/    — single-source shortest paths (non-negative weights)
//	bellmanford/ — shortest paths with negative edges & cycle detection
//	mst/         — minimum spanning trees (Kruskal, Prim)
//	sorting/     — generic in-place sorts
//	search/      — generic binary/ternary/linear searches
//	numtheory/   — primes, modular arithmetic, combinatorics
//	dp/          — stand-alone dynamic-programming solvers
//
// Quick taste:
//
//	t, _ := segtree.New([]int64{1, 3, 2, 4, 5, 6, 7, 8})
//	_ = t.Add(1, 3, 2)     // +2 over indices 1..3
//	m, _ := t.Min(1, 4)    // range minimum in O(log N)
//
// Dive into each package's doc.go for complexity notes and examples.
//
//	go get github.com/SarvikIIT/algokit
package algokit
