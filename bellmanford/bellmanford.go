package bellmanford

import (
	"fmt"

	"github.com/SarvikIIT/algokit/core"
)

// BellmanFord computes shortest distances from source to every vertex of the
// directed, weighted graph g, tolerating negative edge weights.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if no path exists).
//   - prev: predecessor map when WithReturnPath() is set, nil otherwise.
//   - err:  validation failure, or ErrNegativeCycle when a negative cycle
//     is reachable from source.
//
// Validation (in order): source non-empty (ErrEmptySource), g non-nil
// (ErrGraphNil), g directed (ErrUndirectedGraph), g weighted
// (ErrUnweightedGraph), source present (ErrVertexNotFound).
// Complexity: O(V·E) time, O(V) space
func BellmanFord(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order for predictable errors.
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, nil, ErrUndirectedGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Initialize distances to +∞, source to 0.
	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	edges := g.Edges()

	// 4) V-1 rounds of relaxation over every edge. Relaxations only start
	//    from reached vertices, so +∞ never overflows. Early exit when a
	//    full round changes nothing.
	for round := 1; round < len(vertices); round++ {
		changed := false
		for _, e := range edges {
			if relax(e, dist, prev) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// 5) Verification round: any further improvement closes a negative
	//    cycle reachable from the source.
	for _, e := range edges {
		if dist[e.From] != Unreachable && dist[e.From]+e.Weight < dist[e.To] {
			return nil, nil, fmt.Errorf("%w: via edge %s→%s", ErrNegativeCycle, e.From, e.To)
		}
	}

	return dist, prev, nil
}

// relax attempts to improve dist[e.To] through e and reports success.
func relax(e *core.Edge, dist map[string]int64, prev map[string]string) bool {
	if dist[e.From] == Unreachable {
		return false
	}
	if newDist := dist[e.From] + e.Weight; newDist < dist[e.To] {
		dist[e.To] = newDist
		if prev != nil {
			prev[e.To] = e.From
		}

		return true
	}

	return false
}

// Path reconstructs the shortest path from source to target out of the
// predecessor map returned by BellmanFord(…, WithReturnPath()).
// ok is false when target was unreachable.
// Complexity: O(path length)
func Path(prev map[string]string, source, target string) ([]string, bool) {
	if source == target {
		return []string{source}, true
	}
	if _, reached := prev[target]; !reached {
		return nil, false
	}

	var path []string
	for v := target; v != source; v = prev[v] {
		path = append(path, v)
	}
	path = append(path, source)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
