// Package ring: the field ℚ of rational numbers over *big.Rat.
package ring

import "math/big"

// Rationals is the field ℚ. Scalars are *big.Rat values; all operations
// allocate fresh results and never mutate their arguments.
var Rationals Ring[*big.Rat] = rationalField{}

// rationalField implements Ring[*big.Rat]. It is stateless.
type rationalField struct{}

// Zero returns 0 ∈ ℚ.
func (rationalField) Zero() *big.Rat { return new(big.Rat) }

// One returns 1 ∈ ℚ.
func (rationalField) One() *big.Rat { return big.NewRat(1, 1) }

// FromInt64 embeds v into ℚ.
func (rationalField) FromInt64(v int64) *big.Rat { return big.NewRat(v, 1) }

// Add returns a + b.
func (rationalField) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Neg returns −a.
func (rationalField) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Sub returns a − b.
func (rationalField) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a · b.
func (rationalField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// ExactDiv returns a / b. In a field the quotient always exists for b ≠ 0,
// so the only failure mode is ErrDivisionByZero.
func (rationalField) ExactDiv(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(a, b), nil
}

// IsZero reports whether a == 0.
func (rationalField) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// IsOne reports whether a == 1.
func (rationalField) IsOne(a *big.Rat) bool { return a.Num().IsInt64() && a.Num().Int64() == 1 && a.IsInt() }

// Equal reports whether a == b.
func (rationalField) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// IsField reports true: ℚ is a field.
func (rationalField) IsField() bool { return true }

// Format renders a as "p" or "p/q" via big.Rat.RatString.
func (rationalField) Format(a *big.Rat) string { return a.RatString() }

// String names the ring.
func (rationalField) String() string { return "ℚ" }
