package sorting

import "golang.org/x/exp/constraints"

// Merge sorts s with stable top-down merge sort.
// Complexity: O(n log n) time, O(n) extra space
func Merge[T constraints.Ordered](s []T) {
	MergeFunc(s, func(a, b T) bool { return a < b })
}

// MergeFunc sorts s with stable top-down merge sort using a caller-supplied
// strict ordering.
// Complexity: O(n log n) time, O(n) extra space
func MergeFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, 0, len(s)-1, less)
}

// BottomUpMerge sorts s with iterative (bottom-up) merge sort: runs of width
// 1, 2, 4, … are merged pairwise until one run covers the slice.
// Complexity: O(n log n) time, O(n) extra space
func BottomUpMerge[T constraints.Ordered](s []T) {
	n := len(s)
	if n < 2 {
		return
	}
	less := func(a, b T) bool { return a < b }
	buf := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for left := 0; left < n-width; left += 2 * width {
			mid := left + width - 1
			right := min(left+2*width-1, n-1)
			merge(s, buf, left, mid, right, less)
		}
	}
}

func mergeSort[T any](s, buf []T, left, right int, less func(a, b T) bool) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(s, buf, left, mid, less)
	mergeSort(s, buf, mid+1, right, less)
	merge(s, buf, left, mid, right, less)
}

// merge combines the sorted halves s[left..mid] and s[mid+1..right] through
// buf. Stability: on ties the left-half element is taken first.
func merge[T any](s, buf []T, left, mid, right int, less func(a, b T) bool) {
	copy(buf[left:right+1], s[left:right+1])

	i, j := left, mid+1
	for k := left; k <= right; k++ {
		switch {
		case i > mid:
			s[k] = buf[j]
			j++
		case j > right:
			s[k] = buf[i]
			i++
		case less(buf[j], buf[i]):
			s[k] = buf[j]
			j++
		default:
			s[k] = buf[i]
			i++
		}
	}
}
