// Package dfs defines options, result types, and sentinel errors
// for depth-first traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNotDirected is returned when a topological sort is requested
	// on an undirected graph.
	ErrNotDirected = errors.New("dfs: directed graph required")

	// ErrCycleDetected is returned when a topological order does not exist.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Vertex coloring states used by the traversal and cycle detection.
const (
	white = iota // undiscovered
	gray         // on the recursion stack
	black        // fully explored
)

// Result holds the outcome of one DFS run.
type Result struct {
	// Order lists vertex IDs in pre-order (discovery order).
	Order []string

	// Depth maps each discovered vertex to its recursion depth from its root.
	Depth map[string]int

	// Parent maps each discovered vertex to its DFS-tree parent.
	// Roots have no entry.
	Parent map[string]string
}

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing DFS execution.
type Options struct {
	// Ctx allows cancellation; checked on every vertex entry.
	Ctx context.Context

	// FullTraversal restarts DFS from every undiscovered vertex in sorted
	// order, covering disconnected components. startID is ignored.
	FullTraversal bool

	// MaxDepth, if > 0, stops recursing beyond this depth. Zero disables.
	MaxDepth int

	// OnVisit is a pre-order hook; a non-nil error aborts the traversal.
	OnVisit func(id string, depth int) error

	// OnExit is a post-order hook invoked after a vertex's descendants are
	// fully explored; a non-nil error aborts the traversal.
	OnExit func(id string, depth int) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	// err records the first invalid option, reported at DFS entry.
	err error
}

// DefaultOptions returns Options with background context, single-source
// mode, no depth limit, no-op hooks, and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		OnExit:         func(string, int) error { return nil },
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

// WithFullTraversal covers every component, not just the start vertex's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithMaxDepth limits recursion to the given depth. Zero means unlimited;
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

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
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
