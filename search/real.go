package search

// BinaryReal performs binary search over the real interval [lo, hi].
// pred must be monotone (all false, then all true); the returned value
// approximates the transition point to within eps.
// Complexity: O(log((hi-lo)/eps)) pred evaluations
func BinaryReal(lo, hi float64, pred func(float64) bool, eps float64) float64 {
	for hi-lo > eps {
		mid := (lo + hi) / 2
		if pred(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return (lo + hi) / 2
}

// NthRoot returns the real nth root of x to within eps. Even roots of
// negative numbers and non-positive n are rejected with ok=false; odd
// roots of negative inputs are handled by sign symmetry.
// Complexity: O(log(x/eps)) iterations, each O(n)
func NthRoot(x float64, n int, eps float64) (float64, bool) {
	if n <= 0 {
		return 0, false
	}
	if x < 0 {
		if n%2 == 0 {
			return 0, false
		}
		r, ok := NthRoot(-x, n, eps)

		return -r, ok
	}

	hi := x
	if hi < 1 {
		hi = 1
	}
	root := BinaryReal(0, hi, func(m float64) bool {
		return pow(m, n) >= x
	}, eps)

	return root, true
}

// pow is a small positive-exponent power loop, enough for root checks.
func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}
