package search

import "golang.org/x/exp/constraints"

// TernaryMax returns the index of the maximum of a unimodal slice
// (increasing, then decreasing). ok is false only for an empty slice.
//
// The interval is narrowed with two probes at thirds until at most three
// candidates remain, which are then compared directly.
// Complexity: O(log n)
func TernaryMax[T constraints.Ordered](s []T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	left, right := 0, len(s)-1
	for right-left > 2 {
		mid1 := left + (right-left)/3
		mid2 := right - (right-left)/3
		if s[mid1] < s[mid2] {
			left = mid1
		} else {
			right = mid2
		}
	}

	best := left
	for i := left + 1; i <= right; i++ {
		if s[i] > s[best] {
			best = i
		}
	}

	return best, true
}

// TernaryMin returns the index of the minimum of a valley-shaped slice
// (decreasing, then increasing). ok is false only for an empty slice.
// Complexity: O(log n)
func TernaryMin[T constraints.Ordered](s []T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	left, right := 0, len(s)-1
	for right-left > 2 {
		mid1 := left + (right-left)/3
		mid2 := right - (right-left)/3
		if s[mid1] > s[mid2] {
			left = mid1
		} else {
			right = mid2
		}
	}

	best := left
	for i := left + 1; i <= right; i++ {
		if s[i] < s[best] {
			best = i
		}
	}

	return best, true
}

// TernaryReal returns the x in [lo, hi] maximizing the unimodal function f,
// to within eps. A non-positive eps defaults to 1e-9.
// Complexity: O(log((hi-lo)/eps)) evaluations of f
func TernaryReal(f func(float64) float64, lo, hi, eps float64) float64 {
	if eps <= 0 {
		eps = 1e-9
	}

	for hi-lo > eps {
		mid1 := lo + (hi-lo)/3
		mid2 := hi - (hi-lo)/3
		if f(mid1) < f(mid2) {
			lo = mid1
		} else {
			hi = mid2
		}
	}

	return (lo + hi) / 2
}
