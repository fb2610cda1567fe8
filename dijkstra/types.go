// Package dijkstra defines configuration options and sentinel errors
// for the shortest-path computation.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrUnweightedGraph indicates the graph does not carry weights;
	// Dijkstra requires non-negative weights to compute shortest paths.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
type Options struct {
	// ReturnPath controls whether the predecessor map is returned.
	ReturnPath bool

	// MaxDistance caps exploration: vertices whose shortest distance would
	// exceed it are not expanded. Defaults to math.MaxInt64 (no cap).
	MaxDistance int64

	// err records the first invalid option, reported at Dijkstra entry.
	err error
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no path recovery and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithReturnPath enables the predecessor map in the result.
// Without it, the prev map returned by Dijkstra is nil.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at the given distance.
// Negative values surface ErrBadMaxDistance when Dijkstra is invoked.
func WithMaxDistance(maxDist int64) Option {
	return func(o *Options) {
		if maxDist < 0 {
			o.err = ErrBadMaxDistance

			return
		}
		o.MaxDistance = maxDist
	}
}
