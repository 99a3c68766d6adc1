package linext_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/freemod/core"   // modules and elements
	"github.com/katalvlaran/freemod/linext" // package under test
	"github.com/katalvlaran/freemod/ring"   // exact base rings
	"github.com/stretchr/testify/assert"    // assertion library
	"github.com/stretchr/testify/require"
)

// intModule builds a finite ℤ-module over the given indices or fails the test.
func intModule(t *testing.T, indices ...int) *core.Module[int, *big.Int] {
	t.Helper()
	m, err := core.NewFinite(ring.Integers, core.OrderedLess[int], indices)
	require.NoError(t, err)

	return m
}

// monomialOf is a BasisFunc that maps i to B[g(i)] in the codomain.
func monomialOf(codomain *core.Module[int, *big.Int], g func(int) int) linext.BasisFunc[int, *big.Int] {
	return func(i int, _ ...any) (core.Element[int, *big.Int], error) {
		return codomain.Monomial(g(i))
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}

	return i
}

// TestNew_Validation walks the constructor's precondition ladder.
func TestNew_Validation(t *testing.T) {
	X := intModule(t, 1, 2)
	Y := intModule(t, 1, 2)
	fn := monomialOf(Y, func(i int) int { return i })

	_, err := linext.New(nil, Y, fn)
	assert.ErrorIs(t, err, linext.ErrNilDomain)

	_, err = linext.New(X, nil, fn)
	assert.ErrorIs(t, err, linext.ErrNilCodomain)

	_, err = linext.New[int, *big.Int](X, Y, nil)
	assert.ErrorIs(t, err, linext.ErrNilBasisFunc)

	// ℤ-module into a GF(7)-module: same scalar type, different ring.
	F7, err := ring.PrimeField(7)
	require.NoError(t, err)
	YF, err := core.NewFinite(F7, core.OrderedLess[int], []int{1, 2})
	require.NoError(t, err)
	_, err = linext.New(X, YF, monomialOf(YF, func(i int) int { return i }))
	assert.ErrorIs(t, err, linext.ErrRingMismatch)

	// WithZero from a foreign module is rejected.
	z, err := X.Monomial(1)
	require.NoError(t, err)
	_, err = linext.New(X, Y, fn, linext.WithZero(z))
	assert.ErrorIs(t, err, linext.ErrForeignZero)
}

// TestApply_ByLinearity mirrors the classic |i| extension: X has basis
// {−2,−1,1,2}, Y has basis {1,2}, and φ(B[i]) = B[|i|].
func TestApply_ByLinearity(t *testing.T) {
	X := intModule(t, -2, -1, 1, 2)
	Y := intModule(t, 1, 2)

	phi, err := linext.New(X, Y, monomialOf(Y, abs))
	require.NoError(t, err)

	x1, err := X.Monomial(1)
	require.NoError(t, err)
	xm2, err := X.Monomial(-2)
	require.NoError(t, err)

	// φ(B[1]) = B[1], φ(B[−2]) = B[2].
	img, err := phi.Apply(x1)
	require.NoError(t, err)
	assert.Equal(t, "B[1]", img.String())

	// φ(B[1] + 3·B[−2]) = B[1] + 3·B[2].
	x, err := x1.AddScaled(xm2, big.NewInt(3))
	require.NoError(t, err)
	img, err = phi.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, "B[1] + 3*B[2]", img.String())

	// φ(0) = 0.
	img, err = phi.Apply(X.Zero())
	require.NoError(t, err)
	assert.True(t, img.IsZero())
}

// TestApply_DomainCheck rejects elements by parent identity, not value.
func TestApply_DomainCheck(t *testing.T) {
	X := intModule(t, 1, 2)
	Xtwin := intModule(t, 1, 2)
	Y := intModule(t, 1, 2)

	phi, err := linext.New(X, Y, monomialOf(Y, func(i int) int { return i }))
	require.NoError(t, err)

	foreign, err := Xtwin.Monomial(1)
	require.NoError(t, err)
	_, err = phi.Apply(foreign)
	assert.ErrorIs(t, err, linext.ErrNotInDomain)
}

// TestApply_AffineZero verifies the affine fold: with designated zero z,
// Apply(x) = z + Σ c·on_basis(i), and in particular Apply(0) = z.
func TestApply_AffineZero(t *testing.T) {
	X := intModule(t, 1, 2)
	Y := intModule(t, 1, 2, 9)

	z, err := Y.Monomial(9)
	require.NoError(t, err)

	phi, err := linext.New(X, Y, monomialOf(Y, func(i int) int { return i }),
		linext.WithZero(z))
	require.NoError(t, err)

	img, err := phi.Apply(X.Zero())
	require.NoError(t, err)
	assert.True(t, img.Equal(z), "the affine extension sends 0 to the designated zero")

	x, err := X.SumOfMonomials(1, 2)
	require.NoError(t, err)
	img, err = phi.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, "B[1] + B[2] + B[9]", img.String())
}

// TestApply_AuxiliaryArgs forwards trailing args to the basis function.
func TestApply_AuxiliaryArgs(t *testing.T) {
	X := intModule(t, 1, 2, 3)

	// φ(B[i]; shift) = B[i+shift]: one basis function, a family of maps.
	shiftFn := func(i int, args ...any) (core.Element[int, *big.Int], error) {
		shift := 0
		if len(args) > 0 {
			shift = args[0].(int)
		}

		return X.Monomial(i + shift)
	}

	phi, err := linext.New(X, X, shiftFn)
	require.NoError(t, err)

	x1, err := X.Monomial(1)
	require.NoError(t, err)

	img, err := phi.Apply(x1, 2)
	require.NoError(t, err)
	assert.Equal(t, "B[3]", img.String())

	// Without args the map is the identity on B[1].
	img, err = phi.Apply(x1)
	require.NoError(t, err)
	assert.Equal(t, "B[1]", img.String())
}

// TestApply_BasisFuncErrors propagates and wraps basis-function failures.
func TestApply_BasisFuncErrors(t *testing.T) {
	X := intModule(t, 1, 2)
	Y := intModule(t, 1, 2)
	boom := errors.New("boom")

	phi, err := linext.New(X, Y, func(i int, _ ...any) (core.Element[int, *big.Int], error) {
		if i == 2 {
			return core.Element[int, *big.Int]{}, boom
		}

		return Y.Monomial(i)
	})
	require.NoError(t, err)

	x, err := X.SumOfMonomials(1, 2)
	require.NoError(t, err)
	_, err = phi.Apply(x)
	assert.ErrorIs(t, err, boom)

	// A basis image in a foreign module is rejected.
	stray := intModule(t, 1, 2)
	psi, err := linext.New(X, Y, monomialOf(stray, func(i int) int { return i }))
	require.NoError(t, err)
	x1, err := X.Monomial(1)
	require.NoError(t, err)
	_, err = psi.Apply(x1)
	assert.ErrorIs(t, err, linext.ErrNotInCodomain)
}

// TestFromFunction covers the element-function morphism wrapper.
func TestFromFunction(t *testing.T) {
	X := intModule(t, 1, 2)

	double := func(y core.Element[int, *big.Int]) (core.Element[int, *big.Int], error) {
		return y.ScalarMul(big.NewInt(2)), nil
	}

	m, err := linext.FromFunction(X, X, double)
	require.NoError(t, err)
	assert.Same(t, X, m.Domain())
	assert.Same(t, X, m.Codomain())

	x, err := X.SumOfMonomials(1, 2)
	require.NoError(t, err)
	out, err := m.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, "2*B[1] + 2*B[2]", out.String())

	// Validation.
	_, err = linext.FromFunction(nil, X, double)
	assert.ErrorIs(t, err, linext.ErrNilDomain)
	_, err = linext.FromFunction[int, *big.Int](X, X, nil)
	assert.ErrorIs(t, err, linext.ErrNilFunction)

	// Foreign argument.
	other := intModule(t, 1, 2)
	foreign, err := other.Monomial(1)
	require.NoError(t, err)
	_, err = m.Apply(foreign)
	assert.ErrorIs(t, err, linext.ErrNotInDomain)
}
