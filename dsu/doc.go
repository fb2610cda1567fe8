// Package dsu implements a disjoint set union (union-find) over the integer
// universe 0..n-1, with path compression and union by rank.
//
// A DSU partitions its elements into disjoint sets and supports merging two
// sets and asking whether two elements share a set, both in near-constant
// amortized time. It is the classic workhorse behind Kruskal's MST and
// connected-component bookkeeping (see the mst package, which builds on it).
//
// Complexity (α is the inverse Ackermann function, ≤ 4 for any feasible n):
//
//   - Find / Union / Same / Size: O(α(n)) amortized
//   - Count:                      O(1)
//   - Space:                      O(n)
//
// Find uses iterative path halving (each visited element is pointed at its
// grandparent), so a degenerate chain never grows the call stack.
package dsu
