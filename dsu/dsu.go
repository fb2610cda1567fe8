package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for DSU construction and access.
var (
	// ErrBadSize indicates that New was called with a non-positive size.
	ErrBadSize = errors.New("dsu: size must be positive")

	// ErrOutOfRange indicates an element index outside [0, n-1].
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// DSU is a disjoint set union over elements 0..n-1.
// The zero value is not usable; construct with New.
type DSU struct {
	parent []int // parent[i] == i iff i is a set root
	rank   []int // upper bound on subtree height, drives union direction
	size   []int // number of elements in the set, valid at roots only
	count  int   // current number of disjoint sets
}

// New creates a DSU of n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrBadSize when n <= 0.
// Complexity: O(n)
func New(n int) (*DSU, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}

	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements the DSU was constructed over.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the current number of disjoint sets.
// Complexity: O(1)
func (d *DSU) Count() int { return d.count }

// Find returns the root of the set containing x, compressing the path as it
// walks: every visited element is re-pointed at its grandparent.
// Returns ErrOutOfRange for invalid x.
// Complexity: O(α(n)) amortized
func (d *DSU) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x, nil
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank one. Reports whether a merge actually happened
// (false when x and y were already in the same set).
// Complexity: O(α(n)) amortized
func (d *DSU) Union(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Same reports whether x and y belong to the same set.
// Complexity: O(α(n)) amortized
func (d *DSU) Same(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Size returns the number of elements in the set containing x.
// Complexity: O(α(n)) amortized
func (d *DSU) Size(x int) (int, error) {
	r, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[r], nil
}

// check validates an element index against [0, n-1].
func (d *DSU) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not within [0,%d]", ErrOutOfRange, x, len(d.parent)-1)
	}

	return nil
}
