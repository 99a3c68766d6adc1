// Package linext: the FuncMap type — a morphism backed by an element function.
package linext

import "github.com/katalvlaran/freemod/core"

// FuncMap is a module morphism implemented by a plain function on whole
// elements rather than by linearity. It carries no linearity promise of
// its own; it simply delegates to the wrapped function after the usual
// domain check. The triangular package returns FuncMaps for cokernel
// projections and for sections of non-invertible morphisms.
type FuncMap[I comparable, S any] struct {
	domain   *core.Module[I, S]
	codomain *core.Module[I, S]
	fn       ElementFunc[I, S]
}

// FromFunction wraps fn as a morphism from domain to codomain.
//
// Errors:
//   - ErrNilDomain, ErrNilCodomain, ErrNilFunction on nil inputs.
//   - ErrRingMismatch if the modules disagree on the base ring.
func FromFunction[I comparable, S any](
	domain, codomain *core.Module[I, S],
	fn ElementFunc[I, S],
) (*FuncMap[I, S], error) {
	if domain == nil {
		return nil, ErrNilDomain
	}
	if codomain == nil {
		return nil, ErrNilCodomain
	}
	if fn == nil {
		return nil, ErrNilFunction
	}
	if domain.Ring().String() != codomain.Ring().String() {
		return nil, ErrRingMismatch
	}

	return &FuncMap[I, S]{domain: domain, codomain: codomain, fn: fn}, nil
}

// Domain returns the source module.
func (m *FuncMap[I, S]) Domain() *core.Module[I, S] { return m.domain }

// Codomain returns the target module.
func (m *FuncMap[I, S]) Codomain() *core.Module[I, S] { return m.codomain }

// Apply evaluates the wrapped function at x. Auxiliary args are accepted
// for interface compatibility and ignored.
//
// Errors:
//   - ErrNotInDomain if x does not belong to the declared domain.
//   - ErrNotInCodomain if the function's result lands elsewhere.
//   - Any error returned by the wrapped function, verbatim.
func (m *FuncMap[I, S]) Apply(x core.Element[I, S], _ ...any) (core.Element[I, S], error) {
	if x.Parent() != m.domain {
		return core.Element[I, S]{}, ErrNotInDomain
	}
	out, err := m.fn(x)
	if err != nil {
		return core.Element[I, S]{}, err
	}
	if out.Parent() != m.codomain {
		return core.Element[I, S]{}, ErrNotInCodomain
	}

	return out, nil
}
