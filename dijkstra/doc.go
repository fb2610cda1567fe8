// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// The algorithm processes vertices in order of increasing distance using a
// min-heap priority queue with the lazy-decrease-key strategy: improved
// distances push duplicate heap entries, and stale entries are discarded
// when popped. All edge weights are scanned upfront so negative weights fail
// fast with ErrNegativeWeight; graphs with negative edges belong to the
// bellmanford package.
//
// Complexity:
//
//   - Time:  O((V + E) log V)  — each vertex extracted once, each relaxation
//     may push one heap entry
//   - Space: O(V + E)          — distance/predecessor maps plus heap entries
//
// Options:
//
//   - WithReturnPath()     also return the predecessor map for path recovery
//   - WithMaxDistance(x)   do not explore vertices farther than x (x ≥ 0)
//
// Unreachable vertices keep distance math.MaxInt64.
package dijkstra
