// Package triangular: inversion and sections.
package triangular

import (
	"github.com/katalvlaran/freemod/core"
	"github.com/katalvlaran/freemod/linext"
)

// Invert returns the inverse morphism, defined on the codomain basis by
// solving a preimage per basis vector. The result is itself triangular
// with the same kind, unitriangularity and order, and its
// inverse-on-support strategy is the retraction of the original's: each
// domain index i maps back from the dominant index of on_basis(i).
//
// The inverse is computed lazily per basis vector and the two morphisms
// cache each other, so inverting twice returns the original pointer.
//
// Errors:
//   - ErrNonInvertible if the morphism was not declared invertible.
func (m *Morphism[I, S]) Invert() (*Morphism[I, S], error) {
	if !m.invertible {
		return nil, ErrNonInvertible
	}
	if m.inverse != nil {
		return m.inverse, nil
	}

	opts := []Option{
		WithKind(m.kind),
		WithLess(m.less),
		WithInvertible(true),
	}
	if m.unitriangular {
		opts = append(opts, Unitriangular())
	}
	if m.invMode != invModeTrivial {
		opts = append(opts, WithInverseOnSupport(func(i I) (I, bool) {
			img, err := m.ext.OnBasis(i)
			if err != nil {
				var zero I

				return zero, false
			}
			t, err := m.dominant(img)
			if err != nil {
				var zero I

				return zero, false
			}

			return t.Index, true
		}))
	}

	invFn := func(j I, _ ...any) (core.Element[I, S], error) {
		mono, err := m.Codomain().Monomial(j)
		if err != nil {
			return core.Element[I, S]{}, err
		}

		return m.Preimage(mono)
	}

	inv, err := New(m.Codomain(), m.Domain(), invFn, opts...)
	if err != nil {
		return nil, err
	}
	inv.inverse = m
	m.inverse = inv

	return inv, nil
}

// Section returns a left inverse of the morphism: a map g with
// g(Apply(x)) == x for every domain element x. For an invertible morphism
// this is the full inverse; otherwise it is a partial map backed by
// Preimage, which fails with ErrNotInImage outside the image.
func (m *Morphism[I, S]) Section() (linext.Morphism[I, S], error) {
	if m.invertible {
		return m.Invert()
	}

	return linext.FromFunction(m.Codomain(), m.Domain(), m.Preimage)
}
