package search

import "golang.org/x/exp/constraints"

// Binary locates target in the ascending-sorted slice s.
// Returns the index of one matching element and true, or (0, false).
// Complexity: O(log n)
func Binary[T constraints.Ordered](s []T, target T) (int, bool) {
	left, right := 0, len(s)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return 0, false
}

// LowerBound returns the index of the first element >= target in the
// ascending-sorted slice s, or len(s) when every element is smaller.
// Complexity: O(log n)
func LowerBound[T constraints.Ordered](s []T, target T) int {
	left, right := 0, len(s)
	for left < right {
		mid := left + (right-left)/2
		if s[mid] < target {
			left = mid + 1
		} else {
			right = mid
		}
	}

	return left
}

// UpperBound returns the index of the first element > target in the
// ascending-sorted slice s, or len(s) when every element is <= target.
// Complexity: O(log n)
func UpperBound[T constraints.Ordered](s []T, target T) int {
	left, right := 0, len(s)
	for left < right {
		mid := left + (right-left)/2
		if s[mid] <= target {
			left = mid + 1
		} else {
			right = mid
		}
	}

	return left
}

// OnAnswer performs binary search on the answer space [lo, hi]: pred must be
// monotone (all false, then all true). Returns the smallest value for which
// pred is true, or (0, false) when pred is false over the whole interval.
// Complexity: O(log(hi-lo)) pred evaluations
func OnAnswer(lo, hi int, pred func(int) bool) (int, bool) {
	if lo > hi {
		return 0, false
	}

	found := false
	answer := 0
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			answer = mid
			found = true
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	return answer, found
}

// Rotated locates target in a sorted slice that has been rotated at an
// unknown pivot (e.g. [4 5 6 1 2 3]). Elements must be distinct.
// Returns the index and true, or (0, false).
// Complexity: O(log n)
func Rotated[T constraints.Ordered](s []T, target T) (int, bool) {
	left, right := 0, len(s)-1
	for left <= right {
		mid := left + (right-left)/2
		if s[mid] == target {
			return mid, true
		}
		// One half is always sorted; keep whichever contains target.
		if s[left] <= s[mid] {
			if s[left] <= target && target < s[mid] {
				right = mid - 1
			} else {
				left = mid + 1
			}
		} else {
			if s[mid] < target && target <= s[right] {
				left = mid + 1
			} else {
				right = mid - 1
			}
		}
	}

	return 0, false
}

// Peak returns the index of a peak element: one that is not smaller than its
// existing neighbors. For a strictly unimodal slice this is the maximum.
// ok is false only for an empty slice.
// Complexity: O(log n)
func Peak[T constraints.Ordered](s []T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	left, right := 0, len(s)-1
	for left < right {
		mid := left + (right-left)/2
		if s[mid] < s[mid+1] {
			left = mid + 1
		} else {
			right = mid
		}
	}

	return left, true
}
