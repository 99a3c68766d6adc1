// Package ring: the Ring[S] interface and its sentinel errors.
//
// This file declares ONLY the interface and the error set. Concrete rings
// live in their own files (rational.go, integer.go, primefield.go). All
// implementations MUST return the sentinels below and callers MUST match
// them via errors.Is. No ring operation may panic on user input.
package ring

import "errors"

// Sentinel errors for exact ring arithmetic.
var (
	// ErrDivisionByZero indicates that ExactDiv was called with a zero divisor.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrInexactDivision indicates that an exact division was requested but
	// the quotient does not exist in the ring (e.g. 3/2 in ℤ).
	ErrInexactDivision = errors.New("ring: inexact division")

	// ErrBadModulus indicates that PrimeField was given a modulus that is
	// not a prime number ≥ 2.
	ErrBadModulus = errors.New("ring: modulus is not prime")
)

// Ring describes exact arithmetic on a commutative ring with identity,
// over scalars of type S.
//
// Contract for all implementations:
//
//   - Operations are pure: inputs are never mutated, results are freshly
//     allocated (or immutable) values.
//   - Equal, IsZero and IsOne compare values, not representations.
//   - ExactDiv(a, b) returns the unique q with q·b == a when it exists;
//     it returns ErrDivisionByZero when b == 0 and ErrInexactDivision when
//     no such q exists in the ring.
//   - IsField reports whether every nonzero element is invertible; callers
//     use it to decide whether coefficient rescaling is always possible.
//   - String identifies the ring ("ℚ", "ℤ", "GF(7)"); two Ring values with
//     the same String are interchangeable.
type Ring[S any] interface {
	// Zero returns the additive identity.
	Zero() S

	// One returns the multiplicative identity.
	One() S

	// FromInt64 embeds a machine integer into the ring.
	FromInt64(v int64) S

	// Add returns a + b.
	Add(a, b S) S

	// Neg returns −a.
	Neg(a S) S

	// Sub returns a − b.
	Sub(a, b S) S

	// Mul returns a · b.
	Mul(a, b S) S

	// ExactDiv returns the exact quotient a / b, or ErrDivisionByZero /
	// ErrInexactDivision when the quotient does not exist.
	ExactDiv(a, b S) (S, error)

	// IsZero reports whether a is the additive identity.
	IsZero(a S) bool

	// IsOne reports whether a is the multiplicative identity.
	IsOne(a S) bool

	// Equal reports whether a and b are the same ring element.
	Equal(a, b S) bool

	// IsField reports whether the ring is a field.
	IsField() bool

	// Format renders a single scalar for display.
	Format(a S) string

	// String names the ring.
	String() string
}
