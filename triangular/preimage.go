// Package triangular: the triangular solve.
package triangular

import (
	"fmt"

	"github.com/katalvlaran/freemod/core"
)

// Preimage computes x in the domain with Apply(x) == y, by triangular
// elimination of the dominant term of a shrinking remainder:
//
//  1. Extract the dominant term (j, c) of the remainder.
//  2. Look up i = inverse_on_support(j); no entry means y is not in the
//     image.
//  3. Evaluate s = on_basis(i) and check that its dominant index is j —
//     a mismatch means the declared structure is a lie.
//  4. Unless unitriangular, rescale c by the exact division c / s[j].
//  5. Subtract c·s from the remainder and add c·B[i] to the result.
//
// Triangularity makes the dominant index strictly decrease (Upper) or
// increase (Lower) at every step, so the loop terminates; an infinite
// descent is only possible when the triangularity promise is violated,
// which is a contract violation, not a handled condition.
//
// When the morphism is injective on the relevant support the result is
// the unique preimage; otherwise it is one valid preimage.
//
// Errors:
//   - ErrNotInCodomain       if y does not belong to the codomain.
//   - ErrNotInImage          (wrapped with the unreachable index) if no
//     inverse-on-support entry exists for a dominant index.
//   - ErrNotTriangular       (wrapped) on a dominant-index mismatch.
//   - ring.ErrInexactDivision / ring.ErrDivisionByZero (wrapped) when a
//     coefficient cannot be rescaled exactly in the base ring.
func (m *Morphism[I, S]) Preimage(y core.Element[I, S]) (core.Element[I, S], error) {
	var fail core.Element[I, S]
	if y.Parent() != m.Codomain() {
		return fail, ErrNotInCodomain
	}

	R := m.Domain().Ring()
	remainder := y
	out := m.Domain().Zero()

	for !remainder.IsZero() {
		dom, err := m.dominant(remainder)
		if err != nil {
			// Unreachable: the remainder is nonzero. Surface it anyway.
			return fail, err
		}

		i, ok := m.InverseOnSupport(dom.Index)
		if !ok {
			return fail, fmt.Errorf("%w: dominant index %v", ErrNotInImage, dom.Index)
		}

		s, err := m.ext.OnBasis(i)
		if err != nil {
			return fail, err
		}
		sd, err := m.dominant(s)
		if err != nil {
			return fail, fmt.Errorf("%w: zero image on %v", ErrNotTriangular, i)
		}
		if sd.Index != dom.Index {
			return fail, fmt.Errorf("%w: at index %v (dominant index of on_basis(%v) is %v)",
				ErrNotTriangular, dom.Index, i, sd.Index)
		}

		c := dom.Coeff
		if !m.unitriangular {
			if c, err = R.ExactDiv(c, sd.Coeff); err != nil {
				return fail, fmt.Errorf("triangular: rescaling at %v: %w", dom.Index, err)
			}
		}

		if remainder, err = remainder.AddScaled(s, R.Neg(c)); err != nil {
			return fail, err
		}
		t, err := m.Domain().Term(i, c)
		if err != nil {
			// inverse_on_support pointed outside the domain basis.
			return fail, fmt.Errorf("%w: %v", ErrNotTriangular, err)
		}
		if out, err = out.Add(t); err != nil {
			return fail, err
		}
	}

	return out, nil
}
