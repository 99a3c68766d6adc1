// Package triangular implements module morphisms that are triangular with
// respect to a total order on the codomain's basis indices, and the
// elimination algorithms that triangularity unlocks: preimages
// (triangular solve), coreduction (normal forms modulo the image),
// cokernel bases, sections, and genuine inverses.
//
// Overview:
//
//   - A Morphism composes a linear extension (linext.Map) with a
//     triangular policy: the convention (Upper: dominant = leading term,
//     Lower: dominant = trailing term), an optional unitriangularity
//     promise, an optional comparator override on codomain indices, an
//     invertibility flag, and an inverse-on-support index map from
//     codomain indices back to domain indices.
//   - The defining contract: for every domain index i, the dominant term
//     of on_basis(i) has an index j with inverse_on_support(j) == i; when
//     unitriangular, that dominant coefficient is the ring one. The
//     contract is promised by the caller, exercised by the solvers, and
//     checked only by the explicit Verify diagnostic.
//   - Preimage eliminates the dominant term of a remainder one step at a
//     time: look up the domain index behind it, evaluate the basis image,
//     rescale by exact division unless unitriangular, subtract, repeat.
//     Triangularity makes the dominant index strictly decrease (Upper) or
//     increase (Lower), so the loop terminates.
//   - Coreduced runs the same loop but keeps dominant terms that no image
//     can eliminate, producing a normal form modulo the image. It requires
//     a field or a unitriangular morphism; over a general ring exact
//     division mid-elimination cannot be guaranteed otherwise, and the
//     restriction is deliberate.
//   - CokernelBasisIndices lists, for a finite-dimensional codomain, the
//     indices never realized as a dominant term of an image element; the
//     corresponding basis vectors span a complement of the image.
//   - Invert returns a genuine triangular inverse when the morphism is
//     invertible; Section returns a partial inverse (built on Preimage)
//     otherwise. Inverting the inverse returns the original morphism.
//
// Inverse-on-support strategies (construction time):
//
//   - trivial (default) — j ↦ j; domain and codomain share the index set.
//   - WithComputedInverse — scan the finite domain basis once, record the
//     dominant index of every basis image in a table owned by the morphism.
//   - WithInverseOnSupport — caller-supplied partial function, for
//     permuted or non-surjective index correspondences.
//
// Concurrency:
//
//   - A constructed Morphism is immutable up to the inverse back-reference
//     cached by Invert; concurrent use of one instance from multiple
//     goroutines requires external synchronization.
//
// Errors (sentinel):
//
//   - ErrBadKind          — Kind outside {Upper, Lower}.
//   - ErrBadOption        — option value of the wrong type, or conflicting options.
//   - ErrNotInCodomain    — solver argument from a foreign module.
//   - ErrNotInImage       — preimage requested for an unreachable element.
//   - ErrNotTriangular    — the basis function contradicts the declared structure.
//   - ErrNotUnitriangular — a dominant coefficient is not the ring one (Verify).
//   - ErrNonInvertible    — Invert on a non-invertible morphism.
//   - ErrUnsupportedRing  — coreduction/cokernel of a non-unitriangular
//     morphism over a ring that is not a field.
//   - ErrInfiniteDimensional     — cokernel or Verify on an open-ended basis.
//   - ErrComputeNeedsFiniteBasis — WithComputedInverse on an open-ended basis.
//
// Example usage:
//
//	// φ(B[i]) = Σ_{d | i} B[d], unitriangular-upper on {1..199}.
//	phi, _ := triangular.New(X, Y, divisorSum, triangular.Unitriangular())
//	pre, _ := phi.Preimage(y6) // B[1] - B[2] - B[3] + B[6]
package triangular
