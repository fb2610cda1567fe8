package numtheory

import "fmt"

// Power computes base^exp with binary exponentiation, without any
// modulus. Overflow is the caller's concern. Negative exponents
// return ErrNegativeInput.
// Complexity: O(log exp)
func Power(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: exponent %d", ErrNegativeInput, exp)
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}

	return result, nil
}

// ModPow computes base^exp mod mod.
// Complexity: O(log exp)
func ModPow(base, exp, mod int64) (int64, error) {
	if mod <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}
	if exp < 0 {
		return 0, fmt.Errorf("%w: exponent %d", ErrNegativeInput, exp)
	}

	base = norm(base, mod)
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}

	return result, nil
}

// ModAdd returns (a + b) mod mod in [0, mod).
func ModAdd(a, b, mod int64) int64 {
	return (norm(a, mod) + norm(b, mod)) % mod
}

// ModSub returns (a - b) mod mod in [0, mod).
func ModSub(a, b, mod int64) int64 {
	return norm(norm(a, mod)-norm(b, mod), mod)
}

// ModMul returns (a * b) mod mod in [0, mod). Inputs are reduced
// first, so the product fits int64 for moduli up to ~3e9.
func ModMul(a, b, mod int64) int64 {
	return norm(a, mod) * norm(b, mod) % mod
}

// ModInv returns the multiplicative inverse of a modulo mod via the
// extended Euclidean algorithm. Returns ErrNoInverse when
// gcd(a, mod) != 1.
// Complexity: O(log mod)
func ModInv(a, mod int64) (int64, error) {
	if mod <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}

	g, x, _ := ExtGCD(norm(a, mod), mod)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, mod, g)
	}

	return norm(x, mod), nil
}

// ModDiv returns (a / b) mod mod, i.e. a * b⁻¹ mod mod.
// Returns ErrNoInverse when b is not invertible.
func ModDiv(a, b, mod int64) (int64, error) {
	inv, err := ModInv(b, mod)
	if err != nil {
		return 0, err
	}

	return ModMul(a, inv, mod), nil
}

// norm maps a onto [0, mod).
func norm(a, mod int64) int64 {
	a %= mod
	if a < 0 {
		a += mod
	}

	return a
}
