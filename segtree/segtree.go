package segtree

import (
	"fmt"
	"math"
)

// unreached is the neutral element for min: returned by query arms that do
// not overlap the requested range, and eliminated by the enclosing min.
const unreached = int64(math.MaxInt64)

// RangeMinTree maintains a fixed-size sequence of int64 under interleaved
// range-additive updates and range-minimum queries, each in O(log N).
//
// Node i of the implicit tree covers a contiguous index interval [lo, hi] of
// the base sequence; its children 2i and 2i+1 cover the two halves split at
// mid = (lo+hi)/2. Invariant: whenever lazy[i] == 0, tree[i] equals the
// minimum of its children (or the element itself at a leaf). A non-zero
// lazy[i] is an additive delta not yet applied to tree[i] nor forwarded to
// the children; flush applies it before any read or partial overlap.
type RangeMinTree struct {
	tree []int64 // subtree minima, 1-based implicit binary tree
	lazy []int64 // pending additive deltas, parallel to tree
	n    int     // number of leaves (fixed at construction)
}

// New builds a RangeMinTree over values in O(N).
// The tree keeps its own copy; later mutations of values do not affect it.
// Returns ErrEmptyValues when len(values) == 0.
func New(values []int64) (*RangeMinTree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}

	t := &RangeMinTree{
		// 4N slots are sufficient for any recursion split over N leaves.
		tree: make([]int64, 4*len(values)),
		lazy: make([]int64, 4*len(values)),
		n:    len(values),
	}
	t.build(1, 0, t.n-1, values)

	return t, nil
}

// Len returns the number of elements the tree was built over.
func (t *RangeMinTree) Len() int { return t.n }

// Add increases every element in the inclusive range [lo, hi] by delta
// (which may be negative) in O(log N).
// Returns ErrOutOfRange when the range is invalid.
func (t *RangeMinTree) Add(lo, hi int, delta int64) error {
	if err := t.checkRange(lo, hi); err != nil {
		return err
	}
	t.update(1, 0, t.n-1, lo, hi, delta)

	return nil
}

// Set assigns value to the element at index in O(log N). It is built atop
// Add: the required delta is derived from the element's current logical value
// (the single-element minimum over [index, index]).
// Returns ErrOutOfRange when index is invalid.
func (t *RangeMinTree) Set(index int, value int64) error {
	current, err := t.Min(index, index)
	if err != nil {
		return err
	}
	t.update(1, 0, t.n-1, index, index, value-current)

	return nil
}

// Min returns the minimum element over the inclusive range [lo, hi] in
// O(log N), reflecting every update applied so far.
// Returns ErrOutOfRange when the range is invalid.
func (t *RangeMinTree) Min(lo, hi int) (int64, error) {
	if err := t.checkRange(lo, hi); err != nil {
		return 0, err
	}

	return t.query(1, 0, t.n-1, lo, hi), nil
}

// Value returns the current logical value of the element at index.
// Equivalent to Min(index, index).
func (t *RangeMinTree) Value(index int) (int64, error) {
	return t.Min(index, index)
}

// build recursively assigns each leaf its input value and each internal node
// the minimum of its two children, bottom-up.
func (t *RangeMinTree) build(node, lo, hi int, values []int64) {
	if lo == hi {
		t.tree[node] = values[lo]

		return
	}

	mid := (lo + hi) / 2
	t.build(2*node, lo, mid, values)
	t.build(2*node+1, mid+1, hi, values)

	t.tree[node] = min(t.tree[2*node], t.tree[2*node+1])
}

// flush applies node's pending delta to its stored minimum, forwards the same
// delta into both children's pending slots (unless node is a leaf), and
// clears node's own slot. Idempotent when the pending delta is zero.
func (t *RangeMinTree) flush(node, lo, hi int) {
	if t.lazy[node] == 0 {
		return
	}

	t.tree[node] += t.lazy[node]
	if lo != hi {
		t.lazy[2*node] += t.lazy[node]
		t.lazy[2*node+1] += t.lazy[node]
	}
	t.lazy[node] = 0
}

// update adds delta over the query range [qlo, qhi] within the subtree at
// node covering [lo, hi].
//
// Node is flushed at entry regardless of overlap: a no-overlap flush is a
// harmless no-op, and flushing before any delta accumulation preserves the
// settled invariant. Full cover accumulates delta into the node's lazy slot
// and flushes immediately, so the node's own minimum is current while the
// children's updates stay deferred. Partial overlap recurses into both
// halves, then recomputes the node's minimum from its children.
func (t *RangeMinTree) update(node, lo, hi, qlo, qhi int, delta int64) {
	t.flush(node, lo, hi)

	if lo > qhi || hi < qlo {
		return
	}
	if qlo <= lo && hi <= qhi {
		t.lazy[node] += delta
		t.flush(node, lo, hi)

		return
	}

	mid := (lo + hi) / 2
	t.update(2*node, lo, mid, qlo, qhi, delta)
	t.update(2*node+1, mid+1, hi, qlo, qhi, delta)

	t.tree[node] = min(t.tree[2*node], t.tree[2*node+1])
}

// query returns the minimum over [qlo, qhi] within the subtree at node
// covering [lo, hi], flushing each visited node so the read value is settled.
// Disjoint arms return the unreached sentinel, eliminated by min at the parent.
func (t *RangeMinTree) query(node, lo, hi, qlo, qhi int) int64 {
	t.flush(node, lo, hi)

	if lo > qhi || hi < qlo {
		return unreached
	}
	if qlo <= lo && hi <= qhi {
		return t.tree[node]
	}

	mid := (lo + hi) / 2
	left := t.query(2*node, lo, mid, qlo, qhi)
	right := t.query(2*node+1, mid+1, hi, qlo, qhi)

	return min(left, right)
}

// checkRange validates an inclusive 0-indexed range against [0, n-1].
func (t *RangeMinTree) checkRange(lo, hi int) error {
	if lo < 0 || hi >= t.n || lo > hi {
		return fmt.Errorf("%w: [%d,%d] not within [0,%d]", ErrOutOfRange, lo, hi, t.n-1)
	}

	return nil
}
