// Package core: the Module type — a free module with a distinguished basis.
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/freemod/ring"
)

// Module is a free module over an exact base ring, with basis vectors
// indexed by values of type I.
//
// A Module is immutable after construction and safe for concurrent use.
// Two flavors exist:
//
//   - New:       open-ended basis — any value of I indexes a basis vector.
//   - NewFinite: enumerated basis — only the listed indices are legal, and
//     finite-dimensional queries (Dim, ToVector, FromVector) become available.
type Module[I comparable, S any] struct {
	ring  ring.Ring[S] // base ring; never nil
	less  Less[I]      // natural total order on indices; never nil
	basis []I          // sorted enumeration; nil for an open-ended basis
	rank  map[I]int    // index → position in basis; nil for an open-ended basis
}

// New constructs a free module with an open-ended (possibly infinite)
// basis over the ring r, ordered by less.
//
// Errors:
//   - ErrNilRing if r is nil.
//   - ErrNilLess if less is nil.
func New[I comparable, S any](r ring.Ring[S], less Less[I]) (*Module[I, S], error) {
	if r == nil {
		return nil, ErrNilRing
	}
	if less == nil {
		return nil, ErrNilLess
	}

	return &Module[I, S]{ring: r, less: less}, nil
}

// NewFinite constructs a free module with the finite basis enumeration
// indices over the ring r, ordered by less. The enumeration is copied and
// stored sorted ascending under less, so callers may reuse their slice.
//
// Errors:
//   - ErrNilRing        if r is nil.
//   - ErrNilLess        if less is nil.
//   - ErrDuplicateIndex if an index occurs twice, wrapped with the offender.
func NewFinite[I comparable, S any](r ring.Ring[S], less Less[I], indices []I) (*Module[I, S], error) {
	if r == nil {
		return nil, ErrNilRing
	}
	if less == nil {
		return nil, ErrNilLess
	}

	basis := make([]I, len(indices))
	copy(basis, indices)
	sort.Slice(basis, func(a, b int) bool { return less(basis[a], basis[b]) })

	rank := make(map[I]int, len(basis))
	for pos, i := range basis {
		if _, seen := rank[i]; seen {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateIndex, i)
		}
		rank[i] = pos
	}

	return &Module[I, S]{ring: r, less: less, basis: basis, rank: rank}, nil
}

// Ring returns the base ring of the module.
func (m *Module[I, S]) Ring() ring.Ring[S] { return m.ring }

// Order returns the module's natural total order on basis indices.
func (m *Module[I, S]) Order() Less[I] { return m.less }

// FiniteDimensional reports whether the basis is a finite enumeration.
func (m *Module[I, S]) FiniteDimensional() bool { return m.basis != nil }

// BasisIndices returns a copy of the basis enumeration sorted ascending,
// and whether the basis is finite. For an open-ended basis it returns
// (nil, false).
func (m *Module[I, S]) BasisIndices() ([]I, bool) {
	if m.basis == nil {
		return nil, false
	}
	out := make([]I, len(m.basis))
	copy(out, m.basis)

	return out, true
}

// Dim returns the dimension of a finite-dimensional module.
//
// Errors:
//   - ErrNotFiniteDimensional for an open-ended basis.
func (m *Module[I, S]) Dim() (int, error) {
	if m.basis == nil {
		return 0, ErrNotFiniteDimensional
	}

	return len(m.basis), nil
}

// HasIndex reports whether i indexes a basis vector of the module.
// Every index is legal for an open-ended basis.
func (m *Module[I, S]) HasIndex(i I) bool {
	if m.rank == nil {
		return true
	}
	_, ok := m.rank[i]

	return ok
}

// SameBasis reports whether m and o index their bases by the same set.
// It is true when the modules are the same instance, or when both carry
// finite enumerations that agree element-wise. Two distinct open-ended
// modules are never recognized as sharing a basis.
func (m *Module[I, S]) SameBasis(o *Module[I, S]) bool {
	if m == o {
		return true
	}
	if o == nil || m.basis == nil || o.basis == nil || len(m.basis) != len(o.basis) {
		return false
	}
	for pos, i := range m.basis {
		if o.basis[pos] != i {
			return false
		}
	}

	return true
}

// Zero returns the zero element of the module.
func (m *Module[I, S]) Zero() Element[I, S] {
	return Element[I, S]{parent: m}
}

// Term returns the single-term element c·B[i]. A zero coefficient yields
// the zero element.
//
// Errors:
//   - ErrIndexNotInBasis if i is outside a finite basis, wrapped with i.
func (m *Module[I, S]) Term(i I, c S) (Element[I, S], error) {
	if !m.HasIndex(i) {
		return Element[I, S]{}, fmt.Errorf("%w: %v", ErrIndexNotInBasis, i)
	}
	if m.ring.IsZero(c) {
		return m.Zero(), nil
	}

	return Element[I, S]{parent: m, coeff: map[I]S{i: c}}, nil
}

// Monomial returns the basis element B[i] (coefficient one).
//
// Errors:
//   - ErrIndexNotInBasis if i is outside a finite basis.
func (m *Module[I, S]) Monomial(i I) (Element[I, S], error) {
	return m.Term(i, m.ring.One())
}

// LinearCombination builds an element from the given terms, accumulating
// repeated indices and dropping terms that cancel to zero.
//
// Errors:
//   - ErrIndexNotInBasis if any term index is outside a finite basis.
func (m *Module[I, S]) LinearCombination(terms []Term[I, S]) (Element[I, S], error) {
	coeff := make(map[I]S, len(terms))
	for _, t := range terms {
		if !m.HasIndex(t.Index) {
			return Element[I, S]{}, fmt.Errorf("%w: %v", ErrIndexNotInBasis, t.Index)
		}
		c, seen := coeff[t.Index]
		if seen {
			c = m.ring.Add(c, t.Coeff)
		} else {
			c = t.Coeff
		}
		if m.ring.IsZero(c) {
			delete(coeff, t.Index)
		} else {
			coeff[t.Index] = c
		}
	}

	return Element[I, S]{parent: m, coeff: coeff}, nil
}

// SumOfMonomials returns Σ B[i] over the given indices, accumulating
// repeats.
//
// Errors:
//   - ErrIndexNotInBasis if any index is outside a finite basis.
func (m *Module[I, S]) SumOfMonomials(indices ...I) (Element[I, S], error) {
	terms := make([]Term[I, S], len(indices))
	for pos, i := range indices {
		terms[pos] = Term[I, S]{Index: i, Coeff: m.ring.One()}
	}

	return m.LinearCombination(terms)
}

// FromVector builds an element from its coordinate vector with respect to
// the sorted basis enumeration.
//
// Errors:
//   - ErrNotFiniteDimensional for an open-ended basis.
//   - ErrDimensionMismatch if len(v) differs from the module dimension.
func (m *Module[I, S]) FromVector(v []S) (Element[I, S], error) {
	if m.basis == nil {
		return Element[I, S]{}, ErrNotFiniteDimensional
	}
	if len(v) != len(m.basis) {
		return Element[I, S]{}, fmt.Errorf("%w: got %d coordinates for dimension %d",
			ErrDimensionMismatch, len(v), len(m.basis))
	}

	coeff := make(map[I]S, len(v))
	for pos, c := range v {
		if !m.ring.IsZero(c) {
			coeff[m.basis[pos]] = c
		}
	}

	return Element[I, S]{parent: m, coeff: coeff}, nil
}

// ToVector returns the coordinate vector of e with respect to the sorted
// basis enumeration.
//
// Errors:
//   - ErrNotFiniteDimensional for an open-ended basis.
//   - ErrForeignElement if e does not belong to this module.
func (m *Module[I, S]) ToVector(e Element[I, S]) ([]S, error) {
	if m.basis == nil {
		return nil, ErrNotFiniteDimensional
	}
	if e.parent != m {
		return nil, ErrForeignElement
	}

	v := make([]S, len(m.basis))
	for pos, i := range m.basis {
		if c, ok := e.coeff[i]; ok {
			v[pos] = c
		} else {
			v[pos] = m.ring.Zero()
		}
	}

	return v, nil
}
