package numtheory

import (
	"fmt"
	"math/bits"
)

// IsPrime reports primality by 6k±1 trial division. Fine up to ~1e12;
// use MillerRabin beyond that.
// Complexity: O(√n)
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// millerRabinBases is deterministic for every 64-bit integer.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// MillerRabin reports primality with the deterministic 64-bit witness
// set. Exact for all int64 inputs.
// Complexity: O(log³ n)
func MillerRabin(n int64) bool {
	if n < 2 {
		return false
	}
	for _, p := range [...]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37} {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	// n-1 = d * 2^r with d odd.
	m := uint64(n)
	d := m - 1
	r := 0
	for d&1 == 0 {
		d >>= 1
		r++
	}

witness:
	for _, a := range millerRabinBases {
		x := powMod64(a, d, m)
		if x == 1 || x == m-1 {
			continue
		}
		for i := 0; i < r-1; i++ {
			x = mulMod64(x, x, m)
			if x == m-1 {
				continue witness
			}
		}

		return false
	}

	return true
}

// mulMod64 computes a*b mod m without overflow using a 128-bit
// intermediate product.
func mulMod64(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)

	return rem
}

// powMod64 computes a^e mod m on the same 128-bit multiply.
func powMod64(a, e, m uint64) uint64 {
	result := uint64(1)
	a %= m
	for e > 0 {
		if e&1 == 1 {
			result = mulMod64(result, a, m)
		}
		a = mulMod64(a, a, m)
		e >>= 1
	}

	return result
}

// Sieve runs Eratosthenes up to n and returns the primes plus a
// smallest-prime-factor table spf of length n+1 (spf[0] = spf[1] = 0).
// The table answers factorization queries in O(log n) per number.
// Complexity: O(n log log n) time, O(n) space
func Sieve(n int) (primes []int64, spf []int64, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}

	spf = make([]int64, n+1)
	for i := 2; i <= n; i++ {
		if spf[i] == 0 {
			spf[i] = int64(i)
			primes = append(primes, int64(i))
			for j := i * i; j <= n && j > 0; j += i {
				if spf[j] == 0 {
					spf[j] = int64(i)
				}
			}
		}
	}

	return primes, spf, nil
}

// SegmentedSieve returns the primes in [lo, hi] without allocating a
// table proportional to hi: only base primes up to √hi plus the
// segment itself are materialized.
// Complexity: O((hi-lo+1) log log hi + √hi)
func SegmentedSieve(lo, hi int64) ([]int64, error) {
	if lo < 0 {
		return nil, fmt.Errorf("%w: lo = %d", ErrNegativeInput, lo)
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrBadRange, lo, hi)
	}
	if lo < 2 {
		lo = 2
	}
	if hi < 2 {
		return nil, nil
	}

	base, _, err := Sieve(int(isqrt(hi)))
	if err != nil {
		return nil, err
	}

	composite := make([]bool, hi-lo+1)
	for _, p := range base {
		start := max(p*p, (lo+p-1)/p*p)
		for j := start; j <= hi; j += p {
			composite[j-lo] = true
		}
	}

	var primes []int64
	for i, c := range composite {
		if !c {
			primes = append(primes, lo+int64(i))
		}
	}

	return primes, nil
}
