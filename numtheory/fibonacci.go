package numtheory

import "fmt"

// Fibonacci returns F(n) mod mod using fast doubling:
//
//	F(2k)   = F(k) * (2*F(k+1) − F(k))
//	F(2k+1) = F(k)² + F(k+1)²
//
// F(0) = 0, F(1) = 1.
// Complexity: O(log n)
func Fibonacci(n uint64, mod int64) (int64, error) {
	if mod <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}

	a, _ := fibPair(n, mod)

	return a, nil
}

// fibPair returns (F(n) mod m, F(n+1) mod m).
func fibPair(n uint64, m int64) (int64, int64) {
	if n == 0 {
		return 0, 1 % m
	}

	a, b := fibPair(n>>1, m)
	c := ModMul(a, ModSub(ModMul(2, b, m), a, m), m)
	d := ModAdd(ModMul(a, a, m), ModMul(b, b, m), m)
	if n&1 == 0 {
		return c, d
	}

	return d, ModAdd(c, d, m)
}
