// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm, the negative-edge-tolerant counterpart to the dijkstra package.
//
// The algorithm performs V-1 rounds of relaxation over every edge, then one
// extra round: any improvement in the extra round proves a negative-weight
// cycle is reachable from the source, reported as ErrNegativeCycle.
// With no negative cycle, the distances after V-1 rounds are exact.
//
// Undirected graphs are rejected with ErrUndirectedGraph: an undirected
// negative edge is itself a negative cycle (u→v→u), so the computation is
// only meaningful on directed graphs.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
//
// Unreachable vertices keep distance math.MaxInt64.
package bellmanford
