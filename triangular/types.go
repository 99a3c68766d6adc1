// Package triangular: kinds, sentinel errors, and functional options.
//
// Options carry their payloads as untyped values so that heterogeneous
// options can share one Option type while constructors like WithLess stay
// generic in the index type alone; New re-types every payload and rejects
// mismatches with ErrBadOption rather than panicking.
package triangular

import (
	"errors"

	"github.com/katalvlaran/freemod/core"
)

// Kind selects the dominant-term convention of a triangular morphism.
type Kind int

const (
	// Upper declares that the dominant term of on_basis(i) is its leading
	// term: the largest support index under the codomain order.
	Upper Kind = iota

	// Lower declares that the dominant term is the trailing term: the
	// smallest support index under the codomain order.
	Lower
)

// String renders the kind for error messages.
func (k Kind) String() string {
	if k == Lower {
		return "lower"
	}

	return "upper"
}

// Sentinel errors for triangular morphisms.
var (
	// ErrBadKind indicates a Kind value outside {Upper, Lower}.
	ErrBadKind = errors.New("triangular: unknown triangularity kind")

	// ErrBadOption indicates an option payload of the wrong type for the
	// morphism's index/scalar types, or a conflicting option combination.
	ErrBadOption = errors.New("triangular: invalid option")

	// ErrNotInCodomain indicates that a solver was handed an element that
	// does not belong to the morphism's codomain.
	ErrNotInCodomain = errors.New("triangular: element is not in the codomain")

	// ErrNotInImage indicates that no inverse-on-support entry exists for
	// the dominant index of the remainder: the element has no preimage.
	ErrNotInImage = errors.New("triangular: element is not in the image")

	// ErrNotTriangular indicates that the basis function's actual dominant
	// term contradicts the declared triangular structure. This is a caller
	// contract violation and is never retried.
	ErrNotTriangular = errors.New("triangular: morphism is not triangular")

	// ErrNotUnitriangular indicates that a dominant coefficient is not the
	// ring's one even though the morphism was declared unitriangular.
	ErrNotUnitriangular = errors.New("triangular: morphism is not unitriangular")

	// ErrNonInvertible indicates that Invert was called on a morphism whose
	// invertibility flag is false. Use Section for a partial inverse.
	ErrNonInvertible = errors.New("triangular: non-invertible morphism")

	// ErrUnsupportedRing indicates that coreduction or a cokernel was
	// requested for a non-unitriangular morphism over a ring that is not a
	// field, where exact division mid-elimination cannot be guaranteed.
	ErrUnsupportedRing = errors.New("triangular: not implemented for a non-unitriangular morphism over a general ring")

	// ErrInfiniteDimensional indicates that an operation requiring a finite
	// basis enumeration (cokernel, full Verify) hit an open-ended basis.
	ErrInfiniteDimensional = errors.New("triangular: basis is not finitely enumerated")

	// ErrComputeNeedsFiniteBasis indicates that WithComputedInverse was
	// requested for a domain without a finite basis enumeration.
	ErrComputeNeedsFiniteBasis = errors.New("triangular: computed inverse requires a finite domain basis")
)

// inverseMode selects the inverse-on-support strategy fixed at construction.
type inverseMode int

const (
	invModeTrivial  inverseMode = iota // j ↦ j
	invModeComputed                    // table precomputed from the domain basis
	invModeExplicit                    // caller-supplied partial function
)

// settings collects option payloads before New re-types them.
type settings struct {
	kind          Kind
	unitriangular bool
	invertible    *bool // nil ⇒ default: domain and codomain share a basis
	less          any   // core.Less[I]
	invOnSupport  any   // func(I) (I, bool)
	compute       bool
	zero          any // core.Element[I, S]
	zeroSet       bool
}

// Option configures a Morphism before creation.
type Option func(*settings)

// WithKind selects the dominant-term convention (default Upper).
func WithKind(k Kind) Option {
	return func(s *settings) { s.kind = k }
}

// Unitriangular declares that every dominant coefficient is the ring one.
// This strengthens the triangularity contract and enables coreduction and
// cokernel computation over rings that are not fields.
func Unitriangular() Option {
	return func(s *settings) { s.unitriangular = true }
}

// WithLess overrides the codomain's natural order for dominant-term
// selection. The same comparator drives Preimage, Coreduced, Verify, and
// the ordering of CokernelBasisIndices.
func WithLess[I any](less core.Less[I]) Option {
	return func(s *settings) { s.less = less }
}

// WithInvertible overrides the default invertibility flag (the default is
// true exactly when the domain and codomain share their basis index set).
func WithInvertible(v bool) Option {
	return func(s *settings) { s.invertible = &v }
}

// WithInverseOnSupport supplies the inverse-index function explicitly:
// fn(j) returns the domain index whose basis image has dominant index j,
// or ok=false when no such index exists. Use for permuted or partially
// defined correspondences. Mutually exclusive with WithComputedInverse.
func WithInverseOnSupport[I any](fn func(j I) (I, bool)) Option {
	return func(s *settings) { s.invOnSupport = fn }
}

// WithComputedInverse precomputes the inverse-index table by evaluating
// the basis function on every index of the (finite) domain basis and
// recording the dominant index of each image. Mutually exclusive with
// WithInverseOnSupport.
func WithComputedInverse() Option {
	return func(s *settings) { s.compute = true }
}

// WithZero designates an affine base point for the underlying linear
// extension, as linext.WithZero does.
func WithZero[I comparable, S any](z core.Element[I, S]) Option {
	return func(s *settings) {
		s.zero = z
		s.zeroSet = true
	}
}
