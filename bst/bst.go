package bst

import "golang.org/x/exp/constraints"

// node is a single tree node holding one key.
type node[T constraints.Ordered] struct {
	key         T
	left, right *node[T]
}

// Tree is an unbalanced binary search tree over ordered keys.
// The zero value is unusable; construct with New.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New creates an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of keys stored.
func (t *Tree[T]) Len() int { return t.size }

// Insert adds key to the tree. Reports whether the key was actually inserted
// (false when it was already present).
// Complexity: O(h)
func (t *Tree[T]) Insert(key T) bool {
	var inserted bool
	t.root, inserted = insert(t.root, key)
	if inserted {
		t.size++
	}

	return inserted
}

// Contains reports whether key is present.
// Complexity: O(h)
func (t *Tree[T]) Contains(key T) bool {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Delete removes key from the tree. Reports whether the key was present.
// A node with two children is replaced by its in-order predecessor
// (the maximum of the left subtree).
// Complexity: O(h)
func (t *Tree[T]) Delete(key T) bool {
	var deleted bool
	t.root, deleted = remove(t.root, key)
	if deleted {
		t.size--
	}

	return deleted
}

// Min returns the smallest key. ok is false when the tree is empty.
// Complexity: O(h)
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T

		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key. ok is false when the tree is empty.
// Complexity: O(h)
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T

		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// InOrder returns all keys in ascending order.
// Complexity: O(n)
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// Predecessor returns the largest key strictly smaller than key.
// The key itself need not be present. ok is false when no such key exists.
// Complexity: O(h)
func (t *Tree[T]) Predecessor(key T) (T, bool) {
	var (
		best  T
		found bool
	)
	n := t.root
	for n != nil {
		if n.key < key {
			best, found = n.key, true
			n = n.right
		} else {
			n = n.left
		}
	}

	return best, found
}

// Successor returns the smallest key strictly greater than key.
// The key itself need not be present. ok is false when no such key exists.
// Complexity: O(h)
func (t *Tree[T]) Successor(key T) (T, bool) {
	var (
		best  T
		found bool
	)
	n := t.root
	for n != nil {
		if n.key > key {
			best, found = n.key, true
			n = n.left
		} else {
			n = n.right
		}
	}

	return best, found
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
// Complexity: O(n)
func (t *Tree[T]) Height() int {
	var height func(*node[T]) int
	height = func(n *node[T]) int {
		if n == nil {
			return 0
		}

		return 1 + max(height(n.left), height(n.right))
	}

	return height(t.root)
}

// insert returns the subtree rooted at n with key added, and whether a new
// node was created.
func insert[T constraints.Ordered](n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return &node[T]{key: key}, true
	}

	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = insert(n.left, key)
	case key > n.key:
		n.right, inserted = insert(n.right, key)
	default:
		// Duplicate: leave the tree untouched.
	}

	return n, inserted
}

// remove returns the subtree rooted at n with key removed, and whether the
// key was found.
func remove[T constraints.Ordered](n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var deleted bool
	switch {
	case key < n.key:
		n.left, deleted = remove(n.left, key)

		return n, deleted
	case key > n.key:
		n.right, deleted = remove(n.right, key)

		return n, deleted
	}

	// Found the node to delete.
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// Two children: replace with the in-order predecessor
	// (maximum of the left subtree), then delete that node.
	pred := n.left
	for pred.right != nil {
		pred = pred.right
	}
	n.key = pred.key
	n.left, _ = remove(n.left, pred.key)

	return n, true
}
