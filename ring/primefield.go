// Package ring: prime fields GF(p) over *big.Int.
package ring

import (
	"fmt"
	"math/big"
)

// primalityRounds is the number of Miller-Rabin rounds used to vet the
// modulus in PrimeField. 20 rounds give an error probability below 4^-20.
const primalityRounds = 20

// PrimeField returns the field GF(p) of integers modulo the prime p.
//
// Scalars are *big.Int values kept as canonical representatives in [0, p);
// every operation reduces its result, so mixed-range inputs are tolerated.
// Division is implemented via the modular inverse and therefore always
// succeeds for a nonzero divisor.
//
// Errors:
//   - ErrBadModulus if p < 2 or p fails a Miller-Rabin primality test.
func PrimeField(p int64) (Ring[*big.Int], error) {
	m := big.NewInt(p)
	if p < 2 || !m.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: %d", ErrBadModulus, p)
	}

	return primeField{p: m}, nil
}

// primeField implements Ring[*big.Int] for a fixed prime modulus.
type primeField struct {
	p *big.Int // the prime modulus; never mutated after construction
}

// reduce returns the canonical representative of a in [0, p).
func (f primeField) reduce(a *big.Int) *big.Int { return new(big.Int).Mod(a, f.p) }

// Zero returns 0 ∈ GF(p).
func (f primeField) Zero() *big.Int { return new(big.Int) }

// One returns 1 ∈ GF(p).
func (f primeField) One() *big.Int { return big.NewInt(1) }

// FromInt64 embeds v into GF(p), reducing modulo p.
func (f primeField) FromInt64(v int64) *big.Int { return f.reduce(big.NewInt(v)) }

// Add returns a + b mod p.
func (f primeField) Add(a, b *big.Int) *big.Int { return f.reduce(new(big.Int).Add(a, b)) }

// Neg returns −a mod p.
func (f primeField) Neg(a *big.Int) *big.Int { return f.reduce(new(big.Int).Neg(a)) }

// Sub returns a − b mod p.
func (f primeField) Sub(a, b *big.Int) *big.Int { return f.reduce(new(big.Int).Sub(a, b)) }

// Mul returns a · b mod p.
func (f primeField) Mul(a, b *big.Int) *big.Int { return f.reduce(new(big.Int).Mul(a, b)) }

// ExactDiv returns a · b⁻¹ mod p. GF(p) is a field, so the only failure
// mode is ErrDivisionByZero.
func (f primeField) ExactDiv(a, b *big.Int) (*big.Int, error) {
	if f.IsZero(b) {
		return nil, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(b, f.p)

	return f.reduce(new(big.Int).Mul(a, inv)), nil
}

// IsZero reports whether a ≡ 0 (mod p).
func (f primeField) IsZero(a *big.Int) bool { return f.reduce(a).Sign() == 0 }

// IsOne reports whether a ≡ 1 (mod p).
func (f primeField) IsOne(a *big.Int) bool {
	r := f.reduce(a)

	return r.IsInt64() && r.Int64() == 1
}

// Equal reports whether a ≡ b (mod p).
func (f primeField) Equal(a, b *big.Int) bool { return f.reduce(a).Cmp(f.reduce(b)) == 0 }

// IsField reports true: GF(p) is a field.
func (f primeField) IsField() bool { return true }

// Format renders the canonical representative of a in decimal.
func (f primeField) Format(a *big.Int) string { return f.reduce(a).String() }

// String names the ring, e.g. "GF(7)".
func (f primeField) String() string { return fmt.Sprintf("GF(%s)", f.p) }
