package numtheory

import (
	"fmt"
	"math"
)

// ISqrt returns ⌊√n⌋. Negative input yields ErrNegativeInput.
// Complexity: O(1) plus a correction loop of at most two steps
func ISqrt(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	return isqrt(n), nil
}

// IsPerfectSquare reports whether n is a perfect square.
func IsPerfectSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := isqrt(n)

	return r*r == n
}

// isqrt seeds from the hardware float sqrt and nudges the result until
// r² <= n < (r+1)², which repairs any rounding on large inputs.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n && (r+1)*(r+1) > 0 {
		r++
	}

	return r
}
