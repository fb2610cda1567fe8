// Package bellmanford defines configuration options and sentinel errors
// for the shortest-path computation.
package bellmanford

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by BellmanFord.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrUnweightedGraph indicates the graph does not carry weights.
	ErrUnweightedGraph = errors.New("bellmanford: graph must be weighted")

	// ErrUndirectedGraph indicates the graph is undirected; negative edges
	// only make sense on directed graphs.
	ErrUndirectedGraph = errors.New("bellmanford: graph must be directed")

	// ErrVertexNotFound indicates the source vertex does not exist.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle is reachable from
	// the source, so shortest distances are unbounded below.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")
)

// Options configures a BellmanFord run.
type Options struct {
	// ReturnPath controls whether the predecessor map is returned.
	ReturnPath bool
}

// Option is a functional option for configuring BellmanFord.
type Option func(*Options)

// DefaultOptions returns Options with no path recovery.
func DefaultOptions() Options {
	return Options{}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}
