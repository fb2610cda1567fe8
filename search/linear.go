package search

// Linear returns the index of the first element equal to target, scanning
// left to right. Returns (0, false) when absent.
// Complexity: O(n)
func Linear[T comparable](s []T, target T) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}

	return 0, false
}

// LinearLast returns the index of the last element equal to target.
// Returns (0, false) when absent.
// Complexity: O(n)
func LinearLast[T comparable](s []T, target T) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == target {
			return i, true
		}
	}

	return 0, false
}

// LinearAll returns the indices of every element equal to target, ascending.
// Complexity: O(n)
func LinearAll[T comparable](s []T, target T) []int {
	var out []int
	for i, v := range s {
		if v == target {
			out = append(out, i)
		}
	}

	return out
}

// FindIf returns the index of the first element satisfying pred.
// Returns (0, false) when no element matches.
// Complexity: O(n)
func FindIf[T any](s []T, pred func(T) bool) (int, bool) {
	for i, v := range s {
		if pred(v) {
			return i, true
		}
	}

	return 0, false
}
