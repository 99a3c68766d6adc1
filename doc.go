// Package freemod is your in-memory toolkit for exact linear algebra over
// free modules with a distinguished basis — linear combinations, module
// morphisms by linearity, and triangular morphisms with preimages,
// coreduction and inversion.
//
// 🚀 What is freemod?
//
//	A modern, generic, exact-arithmetic library that brings together:
//		• Base rings: ℚ, ℤ and prime fields GF(p) over math/big scalars
//		• Free modules: basis-indexed linear combinations over any index type
//		• Linear extension: lift a basis function to a full module morphism
//		• Triangular morphisms: preimage (triangular solve), coreduction,
//		  cokernel bases, sections and genuine inverses
//
// ✨ Why choose freemod?
//
//   - Exact by construction – no floating point, no rounding surprises
//   - Index-set generic – bases may be permuted, partial, or infinite
//   - Ring generic – works over any commutative ring with exact division,
//     not just fields
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/       — the Ring[S] interface and exact ℚ, ℤ, GF(p) arithmetic
//	core/       — Module, Element, Term: free modules and linear combinations
//	linext/     — morphisms defined by linearity from a basis function
//	triangular/ — triangular morphisms: Preimage, Coreduced, Invert & friends
//
// Quick sketch:
//
//	X ── φ ──▶ Y        φ(eᵢ) = Σⱼ cᵢⱼ·eⱼ, triangular in the basis order
//	     ◀─ φ⁻¹ ─       recovered one dominant term at a time
//
// Dive into the per-package doc.go files for full examples and the complete
// error contracts.
//
//	go get github.com/katalvlaran/freemod
package freemod
