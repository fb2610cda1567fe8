package sorting

import "golang.org/x/exp/constraints"

// Heap sorts s in place with heapsort: build a max-heap over the whole
// slice, then repeatedly swap the root behind the shrinking heap boundary.
// Complexity: O(n log n), no extra space
func Heap[T constraints.Ordered](s []T) {
	HeapFunc(s, func(a, b T) bool { return a < b })
}

// HeapFunc sorts s in place with heapsort using a caller-supplied strict
// ordering.
// Complexity: O(n log n), no extra space
func HeapFunc[T any](s []T, less func(a, b T) bool) {
	n := len(s)

	// Build the max-heap bottom-up from the last internal node.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, n, i, less)
	}

	// Extract the maximum one by one.
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, i, 0, less)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i,
// within the heap prefix s[:n].
func siftDown[T any](s []T, n, i int, less func(a, b T) bool) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n && less(s[largest], s[left]) {
			largest = left
		}
		if right < n && less(s[largest], s[right]) {
			largest = right
		}
		if largest == i {
			return
		}

		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
