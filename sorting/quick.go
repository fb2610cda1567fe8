package sorting

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Quick sorts s in place with quicksort, using Lomuto partition around the
// last element of each sub-range.
// Complexity: O(n log n) average, O(n²) worst case (sorted input)
func Quick[T constraints.Ordered](s []T) {
	quick(s, 0, len(s)-1)
}

// RandomizedQuick sorts s in place with quicksort, choosing a uniformly
// random pivot per sub-range so no fixed input forces quadratic behavior.
// Complexity: O(n log n) expected
func RandomizedQuick[T constraints.Ordered](s []T) {
	randomizedQuick(s, 0, len(s)-1)
}

// ThreeWayQuick sorts s in place with three-way (Dutch national flag)
// quicksort, partitioning each sub-range into <pivot, ==pivot, >pivot bands.
// Degrades gracefully on inputs with many duplicate keys.
// Complexity: O(n log n) average, linear on a constant slice
func ThreeWayQuick[T constraints.Ordered](s []T) {
	threeWayQuick(s, 0, len(s)-1)
}

func quick[T constraints.Ordered](s []T, left, right int) {
	if left >= right {
		return
	}
	p := partition(s, left, right)
	quick(s, left, p-1)
	quick(s, p+1, right)
}

func randomizedQuick[T constraints.Ordered](s []T, left, right int) {
	if left >= right {
		return
	}
	// Move a random element into pivot position before partitioning.
	r := left + rand.Intn(right-left+1)
	s[r], s[right] = s[right], s[r]

	p := partition(s, left, right)
	randomizedQuick(s, left, p-1)
	randomizedQuick(s, p+1, right)
}

// partition applies Lomuto partition around s[right] and returns the pivot's
// final position.
func partition[T constraints.Ordered](s []T, left, right int) int {
	pivot := s[right]
	i := left - 1
	for j := left; j < right; j++ {
		if s[j] <= pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[right] = s[right], s[i+1]

	return i + 1
}

func threeWayQuick[T constraints.Ordered](s []T, left, right int) {
	if left >= right {
		return
	}

	pivot := s[left]
	lt := left      // s[left..lt-1] < pivot
	i := left + 1   // s[lt..i-1] == pivot
	gt := right + 1 // s[gt..right] > pivot
	for i < gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}

	threeWayQuick(s, left, lt-1)
	threeWayQuick(s, gt, right)
}
