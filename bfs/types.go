// Package bfs defines tunable options and sentinel errors
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Result holds the outcome of one BFS run.
type Result struct {
	// Order lists vertex IDs in the order they were visited.
	Order []string

	// Depth maps each visited vertex to its hop count from the start.
	Depth map[string]int

	// Parent maps each visited vertex to its BFS-tree parent.
	// The start vertex has no entry.
	Parent map[string]string
}

// Option configures BFS behavior via functional arguments. An invalid option
// (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Zero disables the limit.
	MaxDepth int

	// OnVisit is called for each visited vertex with its depth.
	// A non-nil error aborts the traversal and is returned by BFS.
	OnVisit func(id string, depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// err records the first invalid option, reported at BFS entry.
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// a no-op visit hook, and no neighbor filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration to the given depth. Zero means unlimited;
// negative values surface ErrOptionViolation.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			o.err = fmt.Errorf("%w: MaxDepth=%d", ErrOptionViolation, depth)

			return
		}
		o.MaxDepth = depth
	}
}

// WithOnVisit registers a hook invoked for each visited vertex.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor registers an edge filter; return false to skip the edge.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
