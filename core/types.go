// Package core declares the Graph type, its construction options,
// and the sentinel errors shared by all graph operations.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, an integer Weight, and a
// Directed flag mirroring the owning Graph's directedness.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge. Always 0 in unweighted graphs.
	Weight int64

	// Directed reports whether the edge is one-way (From→To only).
	Directed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It stores a vertex set and an adjacency list keyed by vertex ID, with all
// state guarded by a single RWMutex. Configuration flags are immutable after
// NewGraph returns.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	// Configuration flags, fixed at construction.
	directed   bool // default directedness for all edges
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage.
	nextEdgeID uint64                         // monotonically increasing edge ID source
	vertices   map[string]struct{}            // vertex ID → presence
	edges      map[string]*Edge               // edge ID → Edge
	adjacency  map[string]map[string][]string // from → to → edge IDs
}

// NewGraph creates an empty Graph with the given options applied in order.
// By default the Graph is undirected, unweighted, and rejects self-loops.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
