package numtheory

import "fmt"

// Totient returns Euler's φ(n), the count of integers in [1, n]
// coprime to n, by trial factorization.
// Complexity: O(√n)
func Totient(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}
	if n == 0 {
		return 0, nil
	}

	result := n
	for p := int64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		for n%p == 0 {
			n /= p
		}
		result -= result / p
	}
	if n > 1 {
		result -= result / n
	}

	return result, nil
}

// TotientSieve returns φ(0..n) in one pass, the sieve analogue of
// Totient for bulk queries.
// Complexity: O(n log log n) time, O(n) space
func TotientSieve(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	phi := make([]int64, n+1)
	for i := range phi {
		phi[i] = int64(i)
	}
	for p := 2; p <= n; p++ {
		if phi[p] != int64(p) {
			continue // composite, already touched by a smaller prime
		}
		for j := p; j <= n; j += p {
			phi[j] -= phi[j] / int64(p)
		}
	}

	return phi, nil
}

// Divisors returns every positive divisor of n in ascending order.
// Complexity: O(√n) time, O(d(n)) space
func Divisors(n int64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	var small, large []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		small = append(small, d)
		if other := n / d; other != d {
			large = append(large, other)
		}
	}
	// large holds the paired divisors in descending order; reverse in.
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}

	return small, nil
}

// SumOfDivisors returns σ(n), the sum of all positive divisors of n,
// via the multiplicative prime-power formula.
// Complexity: O(√n)
func SumOfDivisors(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	sum := int64(1)
	for p := int64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		// σ contribution of p^k is 1 + p + ... + p^k.
		term := int64(1)
		powerSum := int64(1)
		for n%p == 0 {
			n /= p
			term *= p
			powerSum += term
		}
		sum *= powerSum
	}
	if n > 1 {
		sum *= 1 + n
	}

	return sum, nil
}
