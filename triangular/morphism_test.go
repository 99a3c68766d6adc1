package triangular_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/freemod/core"       // modules and elements
	"github.com/katalvlaran/freemod/linext"     // linear extensions
	"github.com/katalvlaran/freemod/ring"       // exact base rings
	"github.com/katalvlaran/freemod/triangular" // package under test
	"github.com/stretchr/testify/assert"        // assertion library
	"github.com/stretchr/testify/require"
)

// ratModule builds a finite ℚ-module over the given indices or fails the test.
func ratModule(t *testing.T, indices ...int) *core.Module[int, *big.Rat] {
	t.Helper()
	m, err := core.NewFinite(ring.Rationals, core.OrderedLess[int], indices)
	require.NoError(t, err)

	return m
}

// intModule builds a finite ℤ-module over the given indices or fails the test.
func intModule(t *testing.T, indices ...int) *core.Module[int, *big.Int] {
	t.Helper()
	m, err := core.NewFinite(ring.Integers, core.OrderedLess[int], indices)
	require.NoError(t, err)

	return m
}

// span enumerates the integer interval [from, to].
func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for j := from; j <= to; j++ {
		out = append(out, j)
	}

	return out
}

// sumFrom maps i to y[i+off] + ... + y[top]: a unitriangular staircase.
func sumFrom[S any](cod *core.Module[int, S], off, top int) linext.BasisFunc[int, S] {
	return func(i int, _ ...any) (core.Element[int, S], error) {
		return cod.SumOfMonomials(span(i+off, top)...)
	}
}

// weightedFrom maps i to (i+off)*y[i+off] + ... + top*y[top]: the same
// staircase with each summand scaled by its own index.
func weightedFrom[S any](cod *core.Module[int, S], off, top int) linext.BasisFunc[int, S] {
	return func(i int, _ ...any) (core.Element[int, S], error) {
		terms := make([]core.Term[int, S], 0, top-i-off+1)
		for j := i + off; j <= top; j++ {
			terms = append(terms, core.Term[int, S]{Index: j, Coeff: cod.Ring().FromInt64(int64(j))})
		}

		return cod.LinearCombination(terms)
	}
}

// sumTo maps i to y[1] + ... + y[i]: the upper staircase.
func sumTo[S any](cod *core.Module[int, S]) linext.BasisFunc[int, S] {
	return func(i int, _ ...any) (core.Element[int, S], error) {
		return cod.SumOfMonomials(span(1, i)...)
	}
}

// weightedTo maps i to 1*y[1] + ... + i*y[i].
func weightedTo[S any](cod *core.Module[int, S]) linext.BasisFunc[int, S] {
	return func(i int, _ ...any) (core.Element[int, S], error) {
		terms := make([]core.Term[int, S], 0, i)
		for j := 1; j <= i; j++ {
			terms = append(terms, core.Term[int, S]{Index: j, Coeff: cod.Ring().FromInt64(int64(j))})
		}

		return cod.LinearCombination(terms)
	}
}

// shiftInv inverts the dominant index of the off-by-one staircases: j-1
// for j in {2,3,4}, undefined elsewhere.
func shiftInv(j int) (int, bool) {
	if j >= 2 && j <= 4 {
		return j - 1, true
	}

	return 0, false
}

// mono returns the monomial B[i] of m or fails the test.
func mono[S any](t *testing.T, m *core.Module[int, S], i int) core.Element[int, S] {
	t.Helper()
	e, err := m.Monomial(i)
	require.NoError(t, err)

	return e
}

func TestNew_Validation(t *testing.T) {
	X := ratModule(t, 1, 2, 3)
	Y := ratModule(t, 1, 2, 3, 4, 5)
	fn := sumFrom(Y, 1, 5)

	_, err := triangular.New(X, Y, fn, triangular.WithKind(triangular.Kind(7)))
	assert.ErrorIs(t, err, triangular.ErrBadKind)

	_, err = triangular.New(nil, Y, fn)
	assert.ErrorIs(t, err, linext.ErrNilDomain)

	_, err = triangular.New[int, *big.Rat](X, Y, nil)
	assert.ErrorIs(t, err, linext.ErrNilBasisFunc)

	// Both inverse strategies at once.
	_, err = triangular.New(X, Y, fn,
		triangular.WithInverseOnSupport(shiftInv),
		triangular.WithComputedInverse())
	assert.ErrorIs(t, err, triangular.ErrBadOption)

	// Option payloads of the wrong index or scalar type.
	_, err = triangular.New(X, Y, fn, triangular.WithLess(func(a, b string) bool { return a < b }))
	assert.ErrorIs(t, err, triangular.ErrBadOption)

	_, err = triangular.New(X, Y, fn,
		triangular.WithInverseOnSupport(func(string) (string, bool) { return "", false }))
	assert.ErrorIs(t, err, triangular.ErrBadOption)

	Z := intModule(t, 1, 2, 3)
	_, err = triangular.New(X, Y, fn, triangular.WithZero(Z.Zero()))
	assert.ErrorIs(t, err, triangular.ErrBadOption)
}

func TestNew_Defaults(t *testing.T) {
	X := ratModule(t, 1, 2, 3)
	Y := ratModule(t, 1, 2, 3)

	phi, err := triangular.New(X, Y, sumTo(Y))
	require.NoError(t, err)
	assert.Equal(t, triangular.Upper, phi.Kind())
	assert.False(t, phi.IsUnitriangular())

	// Same basis index set, so invertible by default.
	assert.True(t, phi.IsInvertible())

	// The trivial inverse-on-support answers every index with itself.
	i, ok := phi.InverseOnSupport(2)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	// Different index sets kill the default.
	W := ratModule(t, 1, 2, 3, 4, 5)
	psi, err := triangular.New(X, W, sumFrom(W, 1, 5), triangular.WithKind(triangular.Lower))
	require.NoError(t, err)
	assert.False(t, psi.IsInvertible())

	// The flag can be forced either way.
	chi, err := triangular.New(X, Y, sumTo(Y), triangular.WithInvertible(false))
	require.NoError(t, err)
	assert.False(t, chi.IsInvertible())
}

func TestNew_ComputedInverse(t *testing.T) {
	X := ratModule(t, 1, 2, 3)
	Y := ratModule(t, 1, 2, 3, 4, 5)

	phi, err := triangular.New(X, Y, sumFrom(Y, 1, 5),
		triangular.WithKind(triangular.Lower),
		triangular.Unitriangular(),
		triangular.WithComputedInverse())
	require.NoError(t, err)

	// The staircase shifts dominant indices by one.
	for j := 2; j <= 4; j++ {
		i, ok := phi.InverseOnSupport(j)
		assert.True(t, ok)
		assert.Equal(t, j-1, i)
	}
	_, ok := phi.InverseOnSupport(1)
	assert.False(t, ok)
	_, ok = phi.InverseOnSupport(5)
	assert.False(t, ok)

	// Precomputation needs an enumerable domain basis.
	inf, err := core.New(ring.Rationals, core.OrderedLess[int])
	require.NoError(t, err)
	_, err = triangular.New(inf, inf, sumTo(inf), triangular.WithComputedInverse())
	assert.ErrorIs(t, err, triangular.ErrComputeNeedsFiniteBasis)

	// Precomputation trips over a zero basis image.
	zero := func(int, ...any) (core.Element[int, *big.Rat], error) { return Y.Zero(), nil }
	_, err = triangular.New(X, Y, zero, triangular.WithComputedInverse())
	assert.ErrorIs(t, err, triangular.ErrNotTriangular)
}

func TestMorphism_Apply(t *testing.T) {
	X := ratModule(t, 1, 2, 3)
	Y := ratModule(t, 1, 2, 3, 4, 5)

	phi, err := triangular.New(X, Y, sumFrom(Y, 1, 5),
		triangular.WithKind(triangular.Lower),
		triangular.Unitriangular(),
		triangular.WithInverseOnSupport(shiftInv))
	require.NoError(t, err)

	img, err := phi.Apply(mono(t, X, 2))
	require.NoError(t, err)
	assert.Equal(t, "B[3] + B[4] + B[5]", img.String())

	on, err := phi.OnBasis(1)
	require.NoError(t, err)
	assert.Equal(t, "B[2] + B[3] + B[4] + B[5]", on.String())

	_, err = phi.Apply(mono(t, Y, 1))
	assert.ErrorIs(t, err, linext.ErrNotInDomain)
}
