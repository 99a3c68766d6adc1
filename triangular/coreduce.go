// Package triangular: coreduction and cokernel extraction.
package triangular

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/freemod/core"
	"github.com/katalvlaran/freemod/linext"
)

// ringSupported reports whether elimination can always rescale: either
// the base ring is a field, or the morphism is unitriangular so no
// rescaling is ever needed. The restriction for general rings is
// deliberate and mirrors the unresolved exact-division semantics of the
// general case.
func (m *Morphism[I, S]) ringSupported() bool {
	return m.Domain().Ring().IsField() || m.unitriangular
}

// Coreduced returns the normal form of y modulo the image of the
// morphism: the same elimination loop as Preimage, except that a dominant
// term with no inverse-on-support entry is moved from the remainder into
// the result instead of failing, and elimination continues on the rest.
//
// Properties: Coreduced is idempotent on its own output, and
// Coreduced(Apply(x)) == 0 for every domain element x.
//
// Errors:
//   - ErrUnsupportedRing if the morphism is not unitriangular and the base
//     ring is not a field.
//   - ErrNotInCodomain   if y does not belong to the codomain.
//   - ErrNotTriangular   (wrapped) on a dominant-index mismatch.
func (m *Morphism[I, S]) Coreduced(y core.Element[I, S]) (core.Element[I, S], error) {
	var fail core.Element[I, S]
	if !m.ringSupported() {
		return fail, fmt.Errorf("%w: coreduction over %s", ErrUnsupportedRing, m.Domain().Ring())
	}
	if y.Parent() != m.Codomain() {
		return fail, ErrNotInCodomain
	}

	R := m.Codomain().Ring()
	remainder := y
	result := m.Codomain().Zero()

	for !remainder.IsZero() {
		dom, err := m.dominant(remainder)
		if err != nil {
			return fail, err
		}

		i, ok := m.InverseOnSupport(dom.Index)
		if !ok {
			// No image element can eliminate this term: it is part of the
			// normal form. Retain it and keep reducing the rest.
			t, err := m.Codomain().Term(dom.Index, dom.Coeff)
			if err != nil {
				return fail, err
			}
			if remainder, err = remainder.Sub(t); err != nil {
				return fail, err
			}
			if result, err = result.Add(t); err != nil {
				return fail, err
			}
			continue
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
			// The base ring is a field here, so the division is exact.
			if c, err = R.ExactDiv(c, sd.Coeff); err != nil {
				return fail, fmt.Errorf("triangular: rescaling at %v: %w", dom.Index, err)
			}
		}
		if remainder, err = remainder.AddScaled(s, R.Neg(c)); err != nil {
			return fail, err
		}
	}

	return result, nil
}

// CokernelBasisIndices returns the codomain basis indices never realized
// as a dominant term of an image element — exactly those with no
// inverse-on-support entry. The corresponding basis vectors form a basis
// of a complement of the image (the free rows of the echelon form). The
// result is sorted ascending under the morphism's effective order.
//
// Errors:
//   - ErrUnsupportedRing     under the same ring restriction as Coreduced.
//   - ErrInfiniteDimensional if the codomain basis is not finitely
//     enumerated.
func (m *Morphism[I, S]) CokernelBasisIndices() ([]I, error) {
	if !m.ringSupported() {
		return nil, fmt.Errorf("%w: cokernel over %s", ErrUnsupportedRing, m.Domain().Ring())
	}
	indices, ok := m.Codomain().BasisIndices()
	if !ok {
		return nil, fmt.Errorf("%w: cokernel requires a finite codomain", ErrInfiniteDimensional)
	}

	free := make([]I, 0)
	for _, j := range indices {
		if _, hit := m.InverseOnSupport(j); !hit {
			free = append(free, j)
		}
	}
	sort.Slice(free, func(a, b int) bool { return m.less(free[a], free[b]) })

	return free, nil
}

// CokernelProjection returns the projection of the codomain onto the
// complement of the image: a morphism from the codomain to itself that
// evaluates Coreduced.
//
// Errors:
//   - ErrUnsupportedRing under the same ring restriction as Coreduced.
func (m *Morphism[I, S]) CokernelProjection() (*linext.FuncMap[I, S], error) {
	if !m.ringSupported() {
		return nil, fmt.Errorf("%w: cokernel projection over %s", ErrUnsupportedRing, m.Domain().Ring())
	}

	return linext.FromFunction(m.Codomain(), m.Codomain(), m.Coreduced)
}
