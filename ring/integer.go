// Package ring: the ring ℤ of integers over *big.Int.
package ring

import (
	"fmt"
	"math/big"
)

// Integers is the ring ℤ. Scalars are *big.Int values; all operations
// allocate fresh results and never mutate their arguments. ℤ is not a
// field: ExactDiv fails with ErrInexactDivision whenever the quotient is
// not integral.
var Integers Ring[*big.Int] = integerRing{}

// integerRing implements Ring[*big.Int]. It is stateless.
type integerRing struct{}

// Zero returns 0 ∈ ℤ.
func (integerRing) Zero() *big.Int { return new(big.Int) }

// One returns 1 ∈ ℤ.
func (integerRing) One() *big.Int { return big.NewInt(1) }

// FromInt64 embeds v into ℤ.
func (integerRing) FromInt64(v int64) *big.Int { return big.NewInt(v) }

// Add returns a + b.
func (integerRing) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

// Neg returns −a.
func (integerRing) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

// Sub returns a − b.
func (integerRing) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

// Mul returns a · b.
func (integerRing) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// ExactDiv returns a / b when b divides a exactly.
//
// Errors:
//   - ErrDivisionByZero  if b == 0.
//   - ErrInexactDivision if b does not divide a (the remainder is nonzero);
//     the error is wrapped with the offending operands.
func (integerRing) ExactDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s / %s", ErrInexactDivision, a, b)
	}

	return q, nil
}

// IsZero reports whether a == 0.
func (integerRing) IsZero(a *big.Int) bool { return a.Sign() == 0 }

// IsOne reports whether a == 1.
func (integerRing) IsOne(a *big.Int) bool { return a.IsInt64() && a.Int64() == 1 }

// Equal reports whether a == b.
func (integerRing) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

// IsField reports false: ℤ is not a field.
func (integerRing) IsField() bool { return false }

// Format renders a in decimal.
func (integerRing) Format(a *big.Int) string { return a.String() }

// String names the ring.
func (integerRing) String() string { return "ℤ" }
