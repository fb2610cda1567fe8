package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/SarvikIIT/algokit/core"
)

// Dijkstra computes shortest distances from source to every vertex of the
// weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if no path exists).
//   - prev: predecessor map when WithReturnPath() is set, nil otherwise.
//     prev[v] == u means the shortest path to v arrives via u.
//   - err:  validation or traversal failure.
//
// Validation (in order): source non-empty (ErrEmptySource), g non-nil
// (ErrGraphNil), g weighted (ErrUnweightedGraph), source present
// (ErrVertexNotFound), no negative edge weight (ErrNegativeWeight).
// Complexity: O((V + E) log V) time, O(V + E) space
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build options and surface invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate inputs in a fixed order for predictable errors.
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Pre-scan all edges for negative weights and fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Initialize distances to +∞ and the heap with (source, 0).
	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	visited := make(map[string]bool, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	// 5) Main loop: settle vertices in increasing distance order.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)

		// Stale entry from lazy decrease-key: the vertex is already settled.
		if visited[item.id] {
			continue
		}
		// Beyond the cap nothing closer remains in the heap: stop entirely.
		if item.dist > cfg.MaxDistance {
			break
		}
		visited[item.id] = true

		// 6) Relax all outgoing edges of the settled vertex.
		edges, err := g.Neighbors(item.id)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %q: %w", item.id, err)
		}
		for _, e := range edges {
			newDist := item.dist + e.Weight
			if newDist > cfg.MaxDistance || newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			if prev != nil {
				prev[e.To] = item.id
			}
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, prev, nil
}

// Path reconstructs the shortest path from source to target out of the
// predecessor map returned by Dijkstra(…, WithReturnPath()).
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

	// Reverse into source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// nodeItem pairs a vertex with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with the
// lazy-decrease-key pattern: improved distances push duplicates, and stale
// entries are skipped on pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
