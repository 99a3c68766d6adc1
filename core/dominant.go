// Package core: order-dependent dominant-term projections.
//
// LeadingTerm and TrailingTerm extract the extremal term of a linear
// combination under a total order on indices — the primitive that
// triangular elimination pivots on. Both accept an optional comparator
// override; nil falls back to the module's natural order.
package core

// LeadingTerm returns the term with the largest index under less
// (nil ⇒ the module's natural order).
//
// Errors:
//   - ErrEmptyElement   if e is zero.
//   - ErrForeignElement if e is the invalid zero value of Element.
func (e Element[I, S]) LeadingTerm(less Less[I]) (Term[I, S], error) {
	return e.dominant(less, true)
}

// TrailingTerm returns the term with the smallest index under less
// (nil ⇒ the module's natural order).
//
// Errors: as for LeadingTerm.
func (e Element[I, S]) TrailingTerm(less Less[I]) (Term[I, S], error) {
	return e.dominant(less, false)
}

// dominant scans the support once and keeps the extremal index:
// the maximum under less when leading, the minimum otherwise.
func (e Element[I, S]) dominant(less Less[I], leading bool) (Term[I, S], error) {
	if e.parent == nil {
		return Term[I, S]{}, ErrForeignElement
	}
	if e.IsZero() {
		return Term[I, S]{}, ErrEmptyElement
	}
	if less == nil {
		less = e.parent.less
	}

	var best I
	first := true
	for i := range e.coeff {
		if first {
			best = i
			first = false
			continue
		}
		if (leading && less(best, i)) || (!leading && less(i, best)) {
			best = i
		}
	}

	return Term[I, S]{Index: best, Coeff: e.coeff[best]}, nil
}
