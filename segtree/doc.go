// Package segtree implements a segment tree over a fixed-size sequence of
// integers, supporting range-minimum queries and range-additive updates in
// logarithmic time via lazy propagation.
//
// The tree is an implicit binary tree laid out in a flat array (root at
// index 1, children of node i at 2i and 2i+1), with tree and lazy storage of
// size 4N — an arena-style layout with no per-node allocation. A parallel
// lazy array holds pending additive deltas that are pushed down to children
// only when a subtree is actually visited, keeping range updates at O(log N)
// instead of O(N).
//
// Operations:
//
//	t, err := segtree.New([]int64{1, 3, 2, 4})
//	err = t.Add(1, 2, +5)   // add 5 to every element in [1,2]
//	err = t.Set(0, -7)      // point assignment
//	m, err := t.Min(0, 3)   // minimum over [0,3]
//
// Complexity:
//
//   - Construction: O(N)
//   - Range update: O(log N)
//   - Point update: O(log N)
//   - Range query:  O(log N)
//   - Space:        O(4N)
//
// Ranges are inclusive and 0-indexed. Out-of-range or inverted bounds are
// rejected with ErrOutOfRange rather than corrupting internal state; an empty
// initial sequence is rejected with ErrEmptyValues.
//
// Concurrency: a RangeMinTree is not safe for concurrent use. Queries flush
// pending deltas internally, so even Min mutates internal state; wrap the
// whole structure in a single exclusive lock if shared across goroutines.
package segtree
