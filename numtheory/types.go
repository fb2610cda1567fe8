package numtheory

import "errors"

// Mod is the conventional contest prime 1e9+7.
const Mod int64 = 1_000_000_007

// Sentinel errors shared across the package.
var (
	// ErrNegativeInput indicates an argument that must be non-negative.
	ErrNegativeInput = errors.New("numtheory: input must be non-negative")

	// ErrBadModulus indicates a modulus that is zero or negative.
	ErrBadModulus = errors.New("numtheory: modulus must be positive")

	// ErrNoInverse indicates that a has no modular inverse because
	// gcd(a, mod) != 1.
	ErrNoInverse = errors.New("numtheory: no modular inverse")

	// ErrBadRange indicates an interval with hi < lo.
	ErrBadRange = errors.New("numtheory: invalid range")

	// ErrOutOfRange indicates a FactTable access beyond its capacity.
	ErrOutOfRange = errors.New("numtheory: argument exceeds table capacity")
)
