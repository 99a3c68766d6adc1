// Package linext: type declarations, sentinel errors, and functional options.
package linext

import (
	"errors"

	"github.com/katalvlaran/freemod/core"
)

// Sentinel errors for morphism construction and evaluation.
var (
	// ErrNilDomain indicates that a nil domain module was passed to a constructor.
	ErrNilDomain = errors.New("linext: domain module is nil")

	// ErrNilCodomain indicates that a nil codomain module was passed to a constructor.
	ErrNilCodomain = errors.New("linext: codomain module is nil")

	// ErrNilBasisFunc indicates that New received a nil basis function.
	ErrNilBasisFunc = errors.New("linext: basis function is nil")

	// ErrNilFunction indicates that FromFunction received a nil element function.
	ErrNilFunction = errors.New("linext: element function is nil")

	// ErrRingMismatch indicates that the domain and codomain are defined
	// over different base rings.
	ErrRingMismatch = errors.New("linext: domain and codomain base rings differ")

	// ErrNotInDomain indicates that Apply was called with an element whose
	// parent module is not the declared domain.
	ErrNotInDomain = errors.New("linext: element is not in the domain")

	// ErrNotInCodomain indicates that a basis image (or a function result)
	// does not belong to the declared codomain.
	ErrNotInCodomain = errors.New("linext: image is not in the codomain")

	// ErrForeignZero indicates that the element passed to WithZero does not
	// belong to the codomain.
	ErrForeignZero = errors.New("linext: designated zero is not in the codomain")
)

// BasisFunc is a function defined on basis indices of the domain,
// producing elements of the codomain. The trailing args are auxiliary
// parameters forwarded verbatim from Apply; implementations that need
// none simply ignore them.
type BasisFunc[I comparable, S any] func(i I, args ...any) (core.Element[I, S], error)

// ElementFunc maps a whole codomain element to a domain element (or vice
// versa); it is the payload of FromFunction morphisms.
type ElementFunc[I comparable, S any] func(y core.Element[I, S]) (core.Element[I, S], error)

// Morphism is the common surface of all module morphisms in freemod:
// linear extensions, function-backed maps, and triangular morphisms.
type Morphism[I comparable, S any] interface {
	// Domain returns the source module.
	Domain() *core.Module[I, S]

	// Codomain returns the target module.
	Codomain() *core.Module[I, S]

	// Apply evaluates the morphism at x, forwarding any auxiliary args.
	Apply(x core.Element[I, S], args ...any) (core.Element[I, S], error)
}

// Option configures a Map before creation.
type Option[I comparable, S any] func(*Map[I, S])

// WithZero designates z as the zero of the extension. When z differs from
// the codomain's true zero the extension is affine: Apply folds
// z + Σ cᵢ·on_basis(i) instead of the plain linear combination.
// The element is validated against the codomain inside New.
func WithZero[I comparable, S any](z core.Element[I, S]) Option[I, S] {
	return func(m *Map[I, S]) {
		m.zero = z
		m.zeroSet = true
	}
}
