// Package bst implements an unbalanced binary search tree, generic over any
// ordered key type.
//
// For every node, keys in the left subtree are strictly smaller and keys in
// the right subtree strictly greater; duplicates are ignored on insert. The
// tree supports insertion, deletion (leaf, one child, and two children via
// the in-order predecessor), membership tests, min/max, in-order traversal
// (which yields keys in sorted order), and predecessor/successor queries.
//
// Complexity, with h the tree height (O(log n) on random input, O(n) in the
// degenerate sorted-insert case — no rebalancing is performed):
//
//   - Insert / Delete / Contains: O(h)
//   - Min / Max / Predecessor / Successor: O(h)
//   - InOrder: O(n)
//
// Lookup-style queries return a (value, ok) pair rather than a sentinel,
// so the zero key remains a perfectly valid member:
//
//	t := bst.New[int]()
//	t.Insert(5)
//	if v, ok := t.Predecessor(5); ok { … }
//
// A Tree is not safe for concurrent mutation.
package bst
