// Package linext turns a function defined only on basis indices into a
// full module morphism by extending it linearly over linear combinations.
//
// Overview:
//
//   - Map is the morphism-by-linearity: given on_basis : I → Y, it sends
//     x = Σ cᵢ·B[i] to Σ cᵢ·on_basis(i). Evaluation is a single pass over
//     the support of x, so Apply costs O(|support(x)| · t) where t is the
//     cost of one basis image accumulation.
//   - Basis functions may take auxiliary arguments: Apply forwards its
//     trailing args verbatim to every on_basis call, so a family of maps
//     parameterized by extra data needs no closure gymnastics.
//   - The affine case: WithZero designates a base point z for the
//     extension. When z is not the true zero of the codomain, Apply folds
//     z + Σ cᵢ·on_basis(i) by repeated scalar multiplication and addition
//     instead of the plain linear-combination path, so the "zero" of the
//     extension is z rather than 0.
//   - FuncMap wraps an arbitrary element-level function as a morphism with
//     the same Apply surface; the triangular package uses it for cokernel
//     projections and partial sections.
//
// Contract:
//
//   - Apply rejects any element whose parent is not the declared domain —
//     membership is parent identity, not value (ErrNotInDomain).
//   - Every image returned by the basis function must belong to the
//     declared codomain (ErrNotInCodomain).
//
// Errors (sentinel):
//
//   - ErrNilDomain     — nil domain module.
//   - ErrNilCodomain   — nil codomain module.
//   - ErrNilBasisFunc  — nil basis function (New).
//   - ErrNilFunction   — nil element function (FromFunction).
//   - ErrRingMismatch  — domain and codomain base rings differ.
//   - ErrNotInDomain   — Apply argument from a foreign module.
//   - ErrNotInCodomain — a basis image from a foreign module.
//   - ErrForeignZero   — WithZero element not from the codomain.
//
// Example usage:
//
//	// φ(B[i]) = B[|i|], extended by linearity.
//	phi, _ := linext.New(X, Y, func(i int, _ ...any) (core.Element[int, *big.Int], error) {
//	    return Y.Monomial(abs(i))
//	})
//	img, _ := phi.Apply(x)
package linext
