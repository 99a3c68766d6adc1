// Package triangular: on-demand validation of the triangularity contract.
package triangular

import "fmt"

// Verify checks the declared triangular structure on every index of the
// finite domain basis. It is the on-demand counterpart of the contract
// that New takes on trust.
//
// Errors:
//   - ErrInfiniteDimensional if the domain basis is not finitely
//     enumerated; use VerifyOn with an explicit index sample instead.
//   - Everything VerifyOn can return.
func (m *Morphism[I, S]) Verify() error {
	indices, ok := m.Domain().BasisIndices()
	if !ok {
		return fmt.Errorf("%w: full verification requires a finite domain basis", ErrInfiniteDimensional)
	}

	return m.VerifyOn(indices...)
}

// VerifyOn checks the triangularity contract on the given domain indices:
// for each i, the image on_basis(i) must be nonzero, its dominant index j
// must satisfy inverse_on_support(j) == i, and under a unitriangular
// declaration the dominant coefficient must be the ring one.
//
// Errors:
//   - ErrNotTriangular     (wrapped with the offending index) when an
//     image is zero or the dominant index does not retract to i.
//   - ErrNotUnitriangular  (wrapped) on a dominant coefficient other than
//     one under a unitriangular declaration.
//   - Any basis-function evaluation error, verbatim.
func (m *Morphism[I, S]) VerifyOn(indices ...I) error {
	R := m.Domain().Ring()
	for _, i := range indices {
		img, err := m.ext.OnBasis(i)
		if err != nil {
			return err
		}
		t, err := m.dominant(img)
		if err != nil {
			return fmt.Errorf("%w: zero image on %v", ErrNotTriangular, i)
		}
		if m.unitriangular && !R.IsOne(t.Coeff) {
			return fmt.Errorf("%w: dominant coefficient %s on %v",
				ErrNotUnitriangular, R.Format(t.Coeff), i)
		}
		back, ok := m.InverseOnSupport(t.Index)
		if !ok || back != i {
			return fmt.Errorf("%w: on %v (dominant index %v does not retract to %v)",
				ErrNotTriangular, i, t.Index, i)
		}
	}

	return nil
}
