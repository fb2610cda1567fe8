package numtheory

import "fmt"

// FactTable precomputes factorials and inverse factorials modulo a
// prime so that binomials, permutations and Catalan numbers answer in
// O(1). The table is caller-owned: build one, share it, and every
// query stays read-only and goroutine-safe.
type FactTable struct {
	mod     int64
	fact    []int64
	invFact []int64
}

// NewFactTable builds a table covering arguments 0..maxN under the
// given prime modulus. Inverse factorials come from a single Fermat
// inversion of maxN! followed by a downward sweep.
// Complexity: O(maxN + log mod)
func NewFactTable(maxN int, mod int64) (*FactTable, error) {
	if maxN < 0 {
		return nil, fmt.Errorf("%w: maxN = %d", ErrNegativeInput, maxN)
	}
	if mod <= 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}

	t := &FactTable{
		mod:     mod,
		fact:    make([]int64, maxN+1),
		invFact: make([]int64, maxN+1),
	}

	t.fact[0] = 1
	for i := 1; i <= maxN; i++ {
		t.fact[i] = t.fact[i-1] * int64(i) % mod
	}

	inv, err := ModInv(t.fact[maxN], mod)
	if err != nil {
		return nil, err
	}
	t.invFact[maxN] = inv
	for i := maxN; i > 0; i-- {
		t.invFact[i-1] = t.invFact[i] * int64(i) % mod
	}

	return t, nil
}

// Cap returns the largest argument the table covers.
func (t *FactTable) Cap() int { return len(t.fact) - 1 }

// Factorial returns n! mod the table modulus.
func (t *FactTable) Factorial(n int) (int64, error) {
	if err := t.check(n); err != nil {
		return 0, err
	}

	return t.fact[n], nil
}

// C returns the binomial coefficient C(n, k) mod the table modulus.
// Out-of-domain k (k < 0 or k > n) yields 0, matching the
// combinatorial convention.
func (t *FactTable) C(n, k int) (int64, error) {
	if err := t.check(n); err != nil {
		return 0, err
	}
	if k < 0 || k > n {
		return 0, nil
	}

	return t.fact[n] * t.invFact[k] % t.mod * t.invFact[n-k] % t.mod, nil
}

// P returns the permutation count P(n, k) = n!/(n-k)! mod the table
// modulus; out-of-domain k yields 0.
func (t *FactTable) P(n, k int) (int64, error) {
	if err := t.check(n); err != nil {
		return 0, err
	}
	if k < 0 || k > n {
		return 0, nil
	}

	return t.fact[n] * t.invFact[n-k] % t.mod, nil
}

// Catalan returns the nth Catalan number C(2n, n)/(n+1) mod the table
// modulus. The table must cover 2n.
func (t *FactTable) Catalan(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}
	binom, err := t.C(2*n, n)
	if err != nil {
		return 0, err
	}
	inv, err := ModInv(int64(n+1), t.mod)
	if err != nil {
		return 0, err
	}

	return binom * inv % t.mod, nil
}

func (t *FactTable) check(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeInput, n)
	}
	if n >= len(t.fact) {
		return fmt.Errorf("%w: %d > %d", ErrOutOfRange, n, len(t.fact)-1)
	}

	return nil
}

// Binomial returns C(n, k) exactly, without any table or modulus. The
// running product stays integral at every step because the first i+1
// consecutive integers always divide their product.
// Complexity: O(min(k, n-k))
func Binomial(n, k int64) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k // symmetry
	}

	result := int64(1)
	for i := int64(0); i < k; i++ {
		result = result * (n - i) / (i + 1)
	}

	return result
}
