package numtheory

// GCD returns the greatest common divisor of a and b, always
// non-negative. GCD(0, 0) == 0.
// Complexity: O(log min(|a|,|b|))
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, non-negative.
// LCM with either argument zero is zero. Division before the final
// multiply keeps intermediate values small.
// Complexity: O(log min(|a|,|b|))
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}

// ExtGCD returns (g, x, y) such that a*x + b*y == g == gcd(a, b).
// Complexity: O(log min(|a|,|b|))
func ExtGCD(a, b int64) (g, x, y int64) {
	// Iterative extended Euclid: carry both Bézout coefficient rows.
	x0, x1 := int64(1), int64(0)
	y0, y1 := int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	if a < 0 {
		a, x0, y0 = -a, -x0, -y0
	}

	return a, x0, y0
}
