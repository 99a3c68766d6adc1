// Package ring defines the exact base-ring arithmetic that the rest of
// freemod builds on: a small Ring[S] interface over an arbitrary scalar
// type S, together with three ready-made implementations backed by math/big.
//
// Overview:
//
//   - Ring[S] captures a commutative ring with identity: zero, one,
//     addition, negation, multiplication, and *exact* division.
//   - ExactDiv is the operation triangular solving hinges on: over a field
//     it always succeeds (for a nonzero divisor), over ℤ it succeeds only
//     when the quotient is integral.
//   - Every operation returns a freshly allocated scalar; implementations
//     never mutate their inputs. This keeps big.Int/big.Rat aliasing bugs
//     out of the callers.
//
// Implementations:
//
//   - Rationals — the field ℚ over *big.Rat.
//   - Integers  — the ring ℤ over *big.Int (ExactDiv may fail).
//   - PrimeField(p) — the field GF(p) over *big.Int, canonical
//     representatives in [0, p); division via the modular inverse.
//
// Errors (sentinel):
//
//   - ErrDivisionByZero  — ExactDiv with a zero divisor.
//   - ErrInexactDivision — ExactDiv in ℤ when the quotient is not integral.
//   - ErrBadModulus      — PrimeField with a modulus that is not a prime ≥ 2.
//
// Example usage:
//
//	q, err := ring.Integers.ExactDiv(big.NewInt(6), big.NewInt(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(q) // 2
package ring
