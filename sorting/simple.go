package sorting

import "golang.org/x/exp/constraints"

// Insertion sorts s in place with insertion sort. Quadratic in general but
// linear on nearly sorted input, which makes it the usual small-slice
// fallback inside hybrid sorts.
// Complexity: O(n²) worst, O(n) on sorted input
func Insertion[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// Selection sorts s in place with selection sort: each pass swaps the
// minimum of the unsorted suffix into position. Performs at most n-1 swaps.
// Complexity: O(n²)
func Selection[T constraints.Ordered](s []T) {
	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}

// Bubble sorts s in place with bubble sort, stopping early once a full pass
// performs no swap.
// Complexity: O(n²) worst, O(n) on sorted input
func Bubble[T constraints.Ordered](s []T) {
	for i := 0; i < len(s)-1; i++ {
		swapped := false
		for j := 0; j < len(s)-1-i; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// IsSorted reports whether s is in non-decreasing order.
// Complexity: O(n)
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
