// Package linext: the Map type — a module morphism defined by linearity.
package linext

import (
	"fmt"

	"github.com/katalvlaran/freemod/core"
)

// Map is a module morphism obtained by extending a basis function by
// linearity. Construct with New; the zero value is not usable.
//
// A Map is immutable after construction and safe for concurrent use as
// long as its basis function is.
type Map[I comparable, S any] struct {
	domain   *core.Module[I, S] // source module; never nil
	codomain *core.Module[I, S] // target module; never nil
	fn       BasisFunc[I, S]    // image of a single basis vector
	zero     core.Element[I, S] // designated zero of the extension
	zeroSet  bool               // whether WithZero was supplied
	affine   bool               // designated zero differs from the true zero
}

// New constructs the linear extension of fn from domain to codomain.
//
// Preconditions and validation (in order):
//  1. domain must be non-nil (ErrNilDomain).
//  2. codomain must be non-nil (ErrNilCodomain).
//  3. fn must be non-nil (ErrNilBasisFunc).
//  4. Both modules must share a base ring (ErrRingMismatch).
//  5. A WithZero element must belong to the codomain (ErrForeignZero).
func New[I comparable, S any](
	domain, codomain *core.Module[I, S],
	fn BasisFunc[I, S],
	opts ...Option[I, S],
) (*Map[I, S], error) {
	if domain == nil {
		return nil, ErrNilDomain
	}
	if codomain == nil {
		return nil, ErrNilCodomain
	}
	if fn == nil {
		return nil, ErrNilBasisFunc
	}
	// Rings are identified by name: two ring values with the same String
	// are interchangeable (see ring.Ring).
	if domain.Ring().String() != codomain.Ring().String() {
		return nil, fmt.Errorf("%w: %s vs %s",
			ErrRingMismatch, domain.Ring(), codomain.Ring())
	}

	m := &Map[I, S]{domain: domain, codomain: codomain, fn: fn}
	for _, opt := range opts {
		opt(m)
	}

	if m.zeroSet {
		if m.zero.Parent() != codomain {
			return nil, ErrForeignZero
		}
		m.affine = !m.zero.IsZero()
	} else {
		m.zero = codomain.Zero()
	}

	return m, nil
}

// Domain returns the source module.
func (m *Map[I, S]) Domain() *core.Module[I, S] { return m.domain }

// Codomain returns the target module.
func (m *Map[I, S]) Codomain() *core.Module[I, S] { return m.codomain }

// OnBasis evaluates the underlying basis function at i, validating that
// the image lands in the codomain.
func (m *Map[I, S]) OnBasis(i I, args ...any) (core.Element[I, S], error) {
	img, err := m.fn(i, args...)
	if err != nil {
		return core.Element[I, S]{}, fmt.Errorf("linext: basis image of %v: %w", i, err)
	}
	if img.Parent() != m.codomain {
		return core.Element[I, S]{}, fmt.Errorf("%w: basis image of %v", ErrNotInCodomain, i)
	}

	return img, nil
}

// Apply evaluates the morphism at x by linear extension:
//
//	Apply(x) = zero + Σ_{(i,c) ∈ x} c·on_basis(i, args...)
//
// where zero is the codomain zero in the linear case and the designated
// WithZero base point in the affine case. The support of x is traversed
// in ascending index order, so failures are deterministic.
//
// Errors:
//   - ErrNotInDomain if x does not belong to the declared domain.
//   - ErrNotInCodomain (wrapped) if a basis image lands elsewhere.
//   - Any error returned by the basis function, wrapped with its index.
func (m *Map[I, S]) Apply(x core.Element[I, S], args ...any) (core.Element[I, S], error) {
	if x.Parent() != m.domain {
		return core.Element[I, S]{}, ErrNotInDomain
	}

	// Both branches accumulate the same sum; they differ only in the
	// starting element. Keeping the affine fold separate mirrors the
	// contract: the affine extension is not linear, merely well defined.
	acc := m.codomain.Zero()
	if m.affine {
		acc = m.zero
	}

	var err error
	var img core.Element[I, S]
	for _, t := range x.Terms() {
		img, err = m.OnBasis(t.Index, args...)
		if err != nil {
			return core.Element[I, S]{}, err
		}
		acc, err = acc.AddScaled(img, t.Coeff)
		if err != nil {
			return core.Element[I, S]{}, fmt.Errorf("linext: accumulating %v: %w", t.Index, err)
		}
	}

	return acc, nil
}
