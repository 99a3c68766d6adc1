// Package core: the Element type — a finite linear combination of basis vectors.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// Element is a finite linear combination of basis vectors of its parent
// module. The zero value of Element belongs to no module and is rejected
// by every operation with ErrForeignElement.
//
// Elements are immutable: all arithmetic returns fresh values. The
// internal coefficient map never stores ring zeros.
type Element[I comparable, S any] struct {
	parent *Module[I, S] // owning module; nil only for the invalid zero value
	coeff  map[I]S       // index → nonzero coefficient; nil or empty for zero
}

// Parent returns the module the element belongs to (nil for the invalid
// zero value of Element).
func (e Element[I, S]) Parent() *Module[I, S] { return e.parent }

// IsZero reports whether the element is the zero of its module.
func (e Element[I, S]) IsZero() bool { return len(e.coeff) == 0 }

// Len returns the number of nonzero terms.
func (e Element[I, S]) Len() int { return len(e.coeff) }

// Coefficient returns the coefficient of B[i], or the ring zero when the
// index is not in the support.
func (e Element[I, S]) Coefficient(i I) S {
	if c, ok := e.coeff[i]; ok {
		return c
	}

	return e.parent.ring.Zero()
}

// Support returns the indices carrying nonzero coefficients, sorted
// ascending under the module's natural order.
func (e Element[I, S]) Support() []I {
	out := make([]I, 0, len(e.coeff))
	for i := range e.coeff {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return e.parent.less(out[a], out[b]) })

	return out
}

// Terms returns the element's terms sorted ascending by index under the
// module's natural order.
func (e Element[I, S]) Terms() []Term[I, S] {
	support := e.Support()
	out := make([]Term[I, S], len(support))
	for pos, i := range support {
		out[pos] = Term[I, S]{Index: i, Coeff: e.coeff[i]}
	}

	return out
}

// clone returns a mutable copy of the coefficient map.
func (e Element[I, S]) clone() map[I]S {
	out := make(map[I]S, len(e.coeff))
	for i, c := range e.coeff {
		out[i] = c
	}

	return out
}

// accumulate folds c·B[i] into the map, deleting entries that cancel.
func accumulate[I comparable, S any](m *Module[I, S], coeff map[I]S, i I, c S) {
	sum, seen := coeff[i]
	if seen {
		sum = m.ring.Add(sum, c)
	} else {
		sum = c
	}
	if m.ring.IsZero(sum) {
		delete(coeff, i)
	} else {
		coeff[i] = sum
	}
}

// Add returns e + o.
//
// Errors:
//   - ErrForeignElement if the operands belong to different modules
//     (or either is the invalid zero value of Element).
func (e Element[I, S]) Add(o Element[I, S]) (Element[I, S], error) {
	if e.parent == nil || e.parent != o.parent {
		return Element[I, S]{}, ErrForeignElement
	}
	coeff := e.clone()
	for i, c := range o.coeff {
		accumulate(e.parent, coeff, i, c)
	}

	return Element[I, S]{parent: e.parent, coeff: coeff}, nil
}

// Sub returns e − o.
//
// Errors: as for Add.
func (e Element[I, S]) Sub(o Element[I, S]) (Element[I, S], error) {
	if e.parent == nil || e.parent != o.parent {
		return Element[I, S]{}, ErrForeignElement
	}

	return e.AddScaled(o, e.parent.ring.Neg(e.parent.ring.One()))
}

// Neg returns −e.
func (e Element[I, S]) Neg() Element[I, S] {
	coeff := make(map[I]S, len(e.coeff))
	for i, c := range e.coeff {
		coeff[i] = e.parent.ring.Neg(c)
	}

	return Element[I, S]{parent: e.parent, coeff: coeff}
}

// ScalarMul returns c · e.
func (e Element[I, S]) ScalarMul(c S) Element[I, S] {
	if e.parent.ring.IsZero(c) {
		return e.parent.Zero()
	}
	coeff := make(map[I]S, len(e.coeff))
	for i, a := range e.coeff {
		p := e.parent.ring.Mul(c, a)
		if !e.parent.ring.IsZero(p) {
			coeff[i] = p
		}
	}

	return Element[I, S]{parent: e.parent, coeff: coeff}
}

// AddScaled returns e + c·o in a single pass. This is the scalar-weighted
// accumulation primitive that linear extension and triangular elimination
// are built on.
//
// Errors:
//   - ErrForeignElement if the operands belong to different modules.
func (e Element[I, S]) AddScaled(o Element[I, S], c S) (Element[I, S], error) {
	if e.parent == nil || e.parent != o.parent {
		return Element[I, S]{}, ErrForeignElement
	}
	if e.parent.ring.IsZero(c) {
		return e, nil
	}
	coeff := e.clone()
	for i, a := range o.coeff {
		accumulate(e.parent, coeff, i, e.parent.ring.Mul(c, a))
	}

	return Element[I, S]{parent: e.parent, coeff: coeff}, nil
}

// Equal reports whether e and o are the same element of the same module.
// Elements of different modules are never equal.
func (e Element[I, S]) Equal(o Element[I, S]) bool {
	if e.parent != o.parent || len(e.coeff) != len(o.coeff) {
		return false
	}
	for i, c := range e.coeff {
		oc, ok := o.coeff[i]
		if !ok || !e.parent.ring.Equal(c, oc) {
			return false
		}
	}

	return true
}

// String renders the element in basis notation, e.g. "B[1] + 2*B[3]" or
// "B[1] - 1/2*B[2]". The zero element renders as "0". Terms appear sorted
// ascending under the module's natural order.
func (e Element[I, S]) String() string {
	if e.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for pos, t := range e.Terms() {
		c := e.parent.ring.Format(t.Coeff)
		negative := strings.HasPrefix(c, "-")
		if negative {
			c = c[1:]
		}
		switch {
		case pos == 0 && negative:
			sb.WriteString("-")
		case pos > 0 && negative:
			sb.WriteString(" - ")
		case pos > 0:
			sb.WriteString(" + ")
		}
		if c != "1" {
			sb.WriteString(c)
			sb.WriteString("*")
		}
		fmt.Fprintf(&sb, "B[%v]", t.Index)
	}

	return sb.String()
}
