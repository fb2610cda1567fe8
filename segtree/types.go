// Package segtree declares the sentinel errors shared by RangeMinTree operations.
package segtree

import "errors"

// Sentinel errors for segment tree construction and access.
var (
	// ErrEmptyValues indicates that New was called with no initial values.
	// A tree over zero leaves has no well-defined shape.
	ErrEmptyValues = errors.New("segtree: initial values must be non-empty")

	// ErrOutOfRange indicates that a query or update range falls outside
	// [0, N-1], or that lo > hi.
	ErrOutOfRange = errors.New("segtree: range out of bounds")
)
