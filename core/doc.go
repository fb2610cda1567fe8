// Package core defines the central Graph, Edge, and Vertex primitives shared
// by every graph algorithm in algokit (bfs, dfs, dijkstra, bellmanford, mst).
//
// A Graph is an adjacency-list structure guarded by a sync.RWMutex, so it can
// be built and queried from multiple goroutines. Configuration is fixed at
// construction time through functional options:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//
// Capabilities:
//
//   - directed vs. undirected edges (graph-wide default)
//   - weighted vs. unweighted edges (non-zero weights rejected when unweighted)
//   - optional self-loops (disabled by default)
//
// Determinism: Vertices() returns IDs sorted lexicographically and Edges() /
// Neighbors() return edges sorted by Edge.ID, so algorithm output is
// reproducible across runs.
//
// Neighbor orientation: Neighbors(id) returns copies of the incident edges
// oriented outward, i.e. e.From == id and e.To is always the adjacent vertex,
// regardless of how an undirected edge was originally inserted. Algorithms can
// therefore always walk e.To without re-deriving the far endpoint.
//
// Complexity:
//
//   - AddVertex / HasVertex:        O(1)
//   - AddEdge:                      O(1) amortized
//   - Vertices / Edges / Neighbors: O(k log k) for k returned items (sorting)
//
// Errors are package-level sentinels (ErrEmptyVertexID, ErrVertexNotFound,
// ErrBadWeight, ErrLoopNotAllowed) and can be matched with errors.Is.
package core
