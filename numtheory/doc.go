// Package numtheory collects integer arithmetic for contest-style
// workloads: gcd/lcm, binary exponentiation, modular arithmetic under
// a prime modulus, primality testing, sieves, Euler's totient, divisor
// enumeration, integer square roots and fast-doubling Fibonacci.
//
// Conventions:
//
//   - Everything runs on int64. Callers are responsible for staying
//     within 64-bit range except where a function documents its own
//     overflow handling (Binomial, mulMod inside MillerRabin).
//   - The package constant Mod (1e9+7) is the conventional prime
//     modulus; all Mod* helpers take an explicit modulus so other
//     primes work too.
//   - Combinatorial tables are caller-owned: build a FactTable once
//     with NewFactTable and share it, instead of relying on hidden
//     package-level caches.
//
// Complexity per function is documented on the function itself;
// highlights: GCD O(log min(a,b)), ModPow O(log exp), Sieve O(n log
// log n), MillerRabin O(k log³ n) with fixed deterministic bases,
// Fibonacci O(log n).
package numtheory
