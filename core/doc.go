// Package core defines the central Module, Element, and Term types:
// free modules over an exact base ring, with elements stored as finite
// linear combinations of basis vectors indexed by an arbitrary
// comparable type.
//
// Overview:
//
//   - A Module[I, S] is a free module over a ring.Ring[S] whose basis is
//     indexed by values of type I. The index set may be enumerated
//     (NewFinite) or left open-ended (New) for infinite bases.
//   - An Element[I, S] is a finite map index → coefficient, tied to its
//     parent Module. Zero coefficients are never stored, so IsZero is a
//     length check and Support is exactly the set of stored indices.
//   - Elements are immutable values: every operation returns a fresh
//     Element and never mutates its receiver or arguments. A Module and
//     its Elements may therefore be shared across goroutines for reading
//     without synchronization.
//   - A Less[I] predicate is the module's natural total order on indices.
//     It drives Support ordering, String rendering, and the two
//     order-dependent projections LeadingTerm / TrailingTerm, each of
//     which also accepts a caller-supplied comparator override.
//
// When to use:
//
//   - As the element representation for any basis-indexed linear algebra:
//     polynomial-like expansions, incidence spaces, combinatorial free
//     modules.
//   - As the substrate for the linext and triangular packages, which
//     consume Modules and Elements through exactly the surface declared
//     here.
//
// Errors (sentinel):
//
//   - ErrNilRing             if a constructor receives a nil ring.
//   - ErrNilLess             if a constructor receives a nil order predicate.
//   - ErrDuplicateIndex      if a finite basis enumeration repeats an index.
//   - ErrIndexNotInBasis     if a term index is outside a finite basis.
//   - ErrForeignElement      if an element from another module is mixed in.
//   - ErrNotFiniteDimensional if a finite-only query hits an open-ended basis.
//   - ErrDimensionMismatch   if a coordinate vector has the wrong length.
//   - ErrEmptyElement        if a dominant term of the zero element is requested.
//
// Example usage:
//
//	X, _ := core.NewFinite(ring.Rationals, core.OrderedLess[int], []int{1, 2, 3})
//	e2, _ := X.Monomial(2)
//	e3, _ := X.Monomial(3)
//	sum, _ := e2.Add(e3)
//	fmt.Println(sum) // B[2] + B[3]
package core
