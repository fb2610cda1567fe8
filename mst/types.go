package mst

import "errors"

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirectedGraph is returned for directed inputs; spanning trees
	// are defined on undirected graphs here.
	ErrDirectedGraph = errors.New("mst: graph must be undirected")

	// ErrUnweightedGraph is returned when the graph does not carry
	// edge weights.
	ErrUnweightedGraph = errors.New("mst: graph must be weighted")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrRootNotFound is returned when the Prim root vertex is not in
	// the graph.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrDisconnected is returned when no spanning tree exists because
	// the graph has more than one connected component.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrOptionViolation is returned when an Option carries an invalid
	// argument.
	ErrOptionViolation = errors.New("mst: invalid option")
)

// method selects the spanning-tree algorithm.
type method int

const (
	methodKruskal method = iota
	methodPrim
)

// Options configures Compute. Construct via DefaultOptions and the
// With* helpers.
type Options struct {
	method method
	root   string

	// err records the first invalid option; surfaced by Compute.
	err error
}

// Option adjusts Options.
type Option func(*Options)

// DefaultOptions runs Kruskal over the whole edge set.
func DefaultOptions() Options {
	return Options{method: methodKruskal}
}

// WithKruskal selects the union-find based algorithm (the default).
func WithKruskal() Option {
	return func(o *Options) { o.method = methodKruskal }
}

// WithPrim selects the heap-growth algorithm rooted at the given
// vertex. An empty root records ErrOptionViolation.
func WithPrim(root string) Option {
	return func(o *Options) {
		if root == "" {
			o.err = ErrOptionViolation

			return
		}
		o.method = methodPrim
		o.root = root
	}
}
