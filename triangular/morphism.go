// Package triangular: the Morphism type and its construction.
package triangular

import (
	"fmt"

	"github.com/katalvlaran/freemod/core"
	"github.com/katalvlaran/freemod/linext"
)

// Morphism is a module morphism promised to be triangular with respect to
// a total order on the codomain's basis indices. It composes a linear
// extension with the triangular policy fixed at construction; the policy
// never changes afterwards.
//
// The zero value is not usable; construct with New.
type Morphism[I comparable, S any] struct {
	ext           *linext.Map[I, S]  // evaluation by linearity
	kind          Kind               // dominant-term convention
	unitriangular bool               // dominant coefficients are the ring one
	less          core.Less[I]       // effective codomain order; never nil
	invertible    bool               // whether Invert is permitted
	invMode       inverseMode        // inverse-on-support strategy
	invExplicit   func(I) (I, bool)  // explicit mode only
	invTable      map[I]I            // computed mode only; write-once at construction
	inverse       *Morphism[I, S]    // cached by Invert; nil until first use
}

// New constructs a triangular morphism from domain to codomain with basis
// function fn and the given policy options.
//
// Validation (in order):
//  1. Kind must be Upper or Lower (ErrBadKind).
//  2. Module and basis-function validation as in linext.New (nil modules,
//     nil function, ring mismatch, foreign WithZero element).
//  3. Option payloads must match the morphism's index/scalar types, and
//     WithInverseOnSupport conflicts with WithComputedInverse (ErrBadOption).
//  4. WithComputedInverse requires a finite domain basis
//     (ErrComputeNeedsFiniteBasis); the precomputation scan fails with
//     ErrNotTriangular if some basis image is zero.
//
// The triangularity contract itself is NOT validated here: it is the
// caller's promise, checkable on demand via Verify.
func New[I comparable, S any](
	domain, codomain *core.Module[I, S],
	fn linext.BasisFunc[I, S],
	opts ...Option,
) (*Morphism[I, S], error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.kind != Upper && cfg.kind != Lower {
		return nil, fmt.Errorf("%w: %d", ErrBadKind, cfg.kind)
	}
	if cfg.invOnSupport != nil && cfg.compute {
		return nil, fmt.Errorf("%w: WithInverseOnSupport conflicts with WithComputedInverse", ErrBadOption)
	}

	var lopts []linext.Option[I, S]
	if cfg.zeroSet {
		z, ok := cfg.zero.(core.Element[I, S])
		if !ok {
			return nil, fmt.Errorf("%w: WithZero element has the wrong type", ErrBadOption)
		}
		lopts = append(lopts, linext.WithZero(z))
	}

	ext, err := linext.New(domain, codomain, fn, lopts...)
	if err != nil {
		return nil, err
	}

	m := &Morphism[I, S]{
		ext:           ext,
		kind:          cfg.kind,
		unitriangular: cfg.unitriangular,
		less:          codomain.Order(),
	}

	if cfg.less != nil {
		less, ok := cfg.less.(core.Less[I])
		if !ok {
			return nil, fmt.Errorf("%w: WithLess comparator has the wrong index type", ErrBadOption)
		}
		m.less = less
	}

	switch {
	case cfg.invOnSupport != nil:
		inv, ok := cfg.invOnSupport.(func(I) (I, bool))
		if !ok {
			return nil, fmt.Errorf("%w: WithInverseOnSupport function has the wrong index type", ErrBadOption)
		}
		m.invMode = invModeExplicit
		m.invExplicit = inv
	case cfg.compute:
		if err = m.precomputeInverse(); err != nil {
			return nil, err
		}
	default:
		m.invMode = invModeTrivial
	}

	if cfg.invertible != nil {
		m.invertible = *cfg.invertible
	} else {
		m.invertible = domain.SameBasis(codomain)
	}

	return m, nil
}

// precomputeInverse fills the inverse-index table by scanning the finite
// domain basis: for each i, the dominant index j of on_basis(i) maps back
// to i. The table is written once here and read-only afterwards.
func (m *Morphism[I, S]) precomputeInverse() error {
	indices, ok := m.Domain().BasisIndices()
	if !ok {
		return ErrComputeNeedsFiniteBasis
	}

	m.invMode = invModeComputed
	m.invTable = make(map[I]I, len(indices))
	for _, i := range indices {
		img, err := m.ext.OnBasis(i)
		if err != nil {
			return fmt.Errorf("triangular: precomputing inverse at %v: %w", i, err)
		}
		t, err := m.dominant(img)
		if err != nil {
			return fmt.Errorf("%w: zero image on %v", ErrNotTriangular, i)
		}
		m.invTable[t.Index] = i
	}

	return nil
}

// Domain returns the source module.
func (m *Morphism[I, S]) Domain() *core.Module[I, S] { return m.ext.Domain() }

// Codomain returns the target module.
func (m *Morphism[I, S]) Codomain() *core.Module[I, S] { return m.ext.Codomain() }

// Kind returns the dominant-term convention.
func (m *Morphism[I, S]) Kind() Kind { return m.kind }

// IsUnitriangular reports whether the morphism was declared unitriangular.
func (m *Morphism[I, S]) IsUnitriangular() bool { return m.unitriangular }

// IsInvertible reports whether Invert is permitted.
func (m *Morphism[I, S]) IsInvertible() bool { return m.invertible }

// OnBasis returns the image of the basis vector indexed by i.
func (m *Morphism[I, S]) OnBasis(i I, args ...any) (core.Element[I, S], error) {
	return m.ext.OnBasis(i, args...)
}

// Apply evaluates the morphism at x by linear extension, forwarding any
// auxiliary args to the basis function. See linext.Map.Apply.
func (m *Morphism[I, S]) Apply(x core.Element[I, S], args ...any) (core.Element[I, S], error) {
	return m.ext.Apply(x, args...)
}

// InverseOnSupport returns the domain index whose basis image has
// dominant index j, under the morphism's inverse-on-support strategy, or
// ok=false when no such index is known.
func (m *Morphism[I, S]) InverseOnSupport(j I) (I, bool) {
	switch m.invMode {
	case invModeComputed:
		i, ok := m.invTable[j]

		return i, ok
	case invModeExplicit:
		return m.invExplicit(j)
	default:
		return j, true
	}
}

// dominant extracts the dominant term of e per the morphism's convention:
// the leading term for Upper, the trailing term for Lower, both under the
// effective codomain order.
func (m *Morphism[I, S]) dominant(e core.Element[I, S]) (core.Term[I, S], error) {
	if m.kind == Upper {
		return e.LeadingTerm(m.less)
	}

	return e.TrailingTerm(m.less)
}
