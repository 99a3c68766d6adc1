package triangular_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/freemod/core"
	"github.com/katalvlaran/freemod/ring"
	"github.com/katalvlaran/freemod/triangular"
)

// benchStaircase builds f(i) = B[i] + ... + B[n] on a rank-n ℚ-module.
func benchStaircase(b *testing.B, n int) (*triangular.Morphism[int, *big.Rat], *core.Module[int, *big.Rat]) {
	b.Helper()

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + 1
	}
	X, err := core.NewFinite(ring.Rationals, core.OrderedLess[int], indices)
	if err != nil {
		b.Fatal(err)
	}
	Y, err := core.NewFinite(ring.Rationals, core.OrderedLess[int], indices)
	if err != nil {
		b.Fatal(err)
	}

	phi, err := triangular.New(X, Y, func(i int, _ ...any) (core.Element[int, *big.Rat], error) {
		js := make([]int, 0, n-i+1)
		for j := i; j <= n; j++ {
			js = append(js, j)
		}

		return Y.SumOfMonomials(js...)
	}, triangular.WithKind(triangular.Lower), triangular.Unitriangular())
	if err != nil {
		b.Fatal(err)
	}

	return phi, Y
}

// BenchmarkPreimage_Staircase measures a full triangular solve: the
// elimination touches every basis line of a rank-100 module.
func BenchmarkPreimage_Staircase(b *testing.B) {
	const n = 100
	phi, Y := benchStaircase(b, n)

	y, err := Y.Monomial(1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = phi.Preimage(y)
	}
}

// BenchmarkCoreduced_Staircase measures the normal-form reduction of a
// dense codomain element against the same staircase.
func BenchmarkCoreduced_Staircase(b *testing.B) {
	const n = 100
	phi, Y := benchStaircase(b, n)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + 1
	}
	y, err := Y.SumOfMonomials(indices...)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = phi.Coreduced(y)
	}
}
