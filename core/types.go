// Package core: central type declarations and the sentinel error set.
//
// This file declares Less, Term, the package sentinels, and the OrderedLess
// convenience order. The Module and Element types live in module.go and
// element.go respectively.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core module operations.
var (
	// ErrNilRing indicates that a nil base ring was passed to a constructor.
	ErrNilRing = errors.New("core: base ring is nil")

	// ErrNilLess indicates that a nil index order predicate was passed to a constructor.
	ErrNilLess = errors.New("core: index order predicate is nil")

	// ErrDuplicateIndex indicates that a finite basis enumeration contains a repeated index.
	ErrDuplicateIndex = errors.New("core: duplicate basis index")

	// ErrIndexNotInBasis indicates that a term referenced an index outside
	// the module's finite basis enumeration.
	ErrIndexNotInBasis = errors.New("core: index not in basis")

	// ErrForeignElement indicates that an element belonging to a different
	// module (or to no module) was mixed into an operation. Membership is
	// decided by parent identity, not by value.
	ErrForeignElement = errors.New("core: element belongs to a different module")

	// ErrNotFiniteDimensional indicates that a finite-dimensional query
	// (Dim, ToVector, FromVector) was made on an open-ended basis.
	ErrNotFiniteDimensional = errors.New("core: module is not finite dimensional")

	// ErrDimensionMismatch indicates that a coordinate vector's length does
	// not match the module dimension.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrEmptyElement indicates that a dominant term was requested from the
	// zero element, which has no terms.
	ErrEmptyElement = errors.New("core: zero element has no dominant term")
)

// Less is a strict total-order predicate on basis indices: Less(a, b)
// reports whether a sorts before b. It must be irreflexive, transitive,
// and total on the indices it will ever see.
type Less[I any] func(a, b I) bool

// OrderedLess is the natural order on any ordered index type, suitable as
// the Less argument for modules indexed by integers or strings.
func OrderedLess[I cmp.Ordered](a, b I) bool { return a < b }

// Term is a single index/coefficient pair of a linear combination.
type Term[I comparable, S any] struct {
	// Index is the basis index the coefficient applies to.
	Index I

	// Coeff is the ring coefficient; never the ring zero inside an Element.
	Coeff S
}
