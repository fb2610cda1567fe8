package core

import (
	"sort"
	"strconv"
)

// Weighted reports whether the graph permits non-zero edge weights.
// Complexity: O(1)
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports whether edges are directed (one-way From→To).
// Complexity: O(1)
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1)
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to with the given weight, implicitly creating
// missing endpoints, and returns the new edge's ID.
//
// Validation (in order):
//  1. from and to must be non-empty (ErrEmptyVertexID).
//  2. weight must be zero unless the graph is weighted (ErrBadWeight).
//  3. from != to unless loops are enabled (ErrLoopNotAllowed).
//
// In an undirected graph the edge is registered in both adjacency directions
// under the same edge ID. Parallel edges are permitted.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.nextEdgeID++
	id := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	e := &Edge{ID: id, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[id] = e

	g.linkAdjacency(from, to, id)
	if !g.directed && from != to {
		g.linkAdjacency(to, from, id)
	}

	return id, nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the direction of the original insertion is irrelevant.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns copies of all edges sorted by Edge.ID ascending.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Neighbors returns the edges incident to id, oriented outward: every returned
// edge satisfies e.From == id, with e.To the adjacent vertex. Undirected edges
// inserted as to→id are returned as swapped copies. The result is sorted by
// Edge.ID ascending.
//
// Returns ErrEmptyVertexID for an empty id and ErrVertexNotFound when the
// vertex does not exist.
// Complexity: O(d log d) for d incident edges
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeIDs := range g.adjacency[id] {
		for _, eid := range edgeIDs {
			e := g.edges[eid]
			cp := *e
			if cp.From != id {
				// Undirected edge stored as to→id: orient outward.
				cp.From, cp.To = id, cp.From
			}
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique adjacent vertex IDs of id,
// sorted lexicographically ascending.
// Complexity: O(d + k log k) for d incident edges and k unique neighbors
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		set[e.To] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. An undirected edge counts once.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the graph: same flags, vertices, and edges.
// Mutations of the clone never affect the original.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string][]string, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, e := range g.edges {
		cp := *e
		c.edges[id] = &cp
	}
	for from, tos := range g.adjacency {
		c.adjacency[from] = make(map[string][]string, len(tos))
		for to, ids := range tos {
			c.adjacency[from][to] = append([]string(nil), ids...)
		}
	}

	return c
}

// ensureVertex registers id in the vertex set and adjacency index.
// Caller must hold g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string][]string)
}

// linkAdjacency records edge id under from→to. Caller must hold g.mu.
func (g *Graph) linkAdjacency(from, to, id string) {
	g.adjacency[from][to] = append(g.adjacency[from][to], id)
}
