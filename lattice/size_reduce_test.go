package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lattice/lattice"
	"github.com/katalvlaran/lattice/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coefficient computes μ_{k,l} from a fresh Gram-Schmidt pass.
func coefficient(t *testing.T, b *lattice.Basis, k, l int) float64 {
	t.Helper()
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)
	num, err := vector.Dot(b.Vector(k), o.Vector(l))
	require.NoError(t, err)

	return num / o.SquaredNorm(l)
}

// TestSizeReduceRemovesMultiple: [[1,0],[1,2]] reduces b_1 to [0,2].
func TestSizeReduceRemovesMultiple(t *testing.T) {
	b := mustBasis(t, [][]float64{{1, 0}, {1, 2}})
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)

	reduced, err := lattice.SizeReduce(b, o, 1, 0)
	require.NoError(t, err)
	assert.True(t, reduced)
	assert.Equal(t, [][]float64{{1, 0}, {0, 2}}, b.Rows())
	assert.InDeltaSlice(t, []float64{0, 2}, []float64(o.Vector(1)), orthoTol, "ortho must be refreshed")
}

// TestSizeReduceRoundsHalfAwayFromZero: μ = 0.5 rounds to 1.
func TestSizeReduceRoundsHalfAwayFromZero(t *testing.T) {
	b := mustBasis(t, [][]float64{{2, 0}, {1, 1}})
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)

	reduced, err := lattice.SizeReduce(b, o, 1, 0)
	require.NoError(t, err)
	assert.True(t, reduced)
	assert.Equal(t, [][]float64{{2, 0}, {-1, 1}}, b.Rows())

	// -0.5 after the reduction: stays within bound
	assert.InDelta(t, -0.5, coefficient(t, b, 1, 0), 1e-12)
}

// TestSizeReduceBoundsCoefficient checks |μ| ≤ 0.5 after reduction on integer input.
func TestSizeReduceBoundsCoefficient(t *testing.T) {
	b := mustBasis(t, [][]float64{{3, 1, 0}, {17, 9, 4}, {-8, 5, 11}})
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)

	for _, kl := range [][2]int{{1, 0}, {2, 1}, {2, 0}} {
		_, err = lattice.SizeReduce(b, o, kl[0], kl[1])
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(coefficient(t, b, kl[0], kl[1])), 0.5+1e-9)
	}
}

// TestSizeReduceZeroCoefficient leaves the basis untouched.
func TestSizeReduceZeroCoefficient(t *testing.T) {
	b := mustBasis(t, [][]float64{{1, 0}, {0, 2}})
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)

	reduced, err := lattice.SizeReduce(b, o, 1, 0)
	require.NoError(t, err)
	assert.False(t, reduced)
	assert.Equal(t, [][]float64{{1, 0}, {0, 2}}, b.Rows())
}

// TestSizeReduceDegenerate skips a near-zero denominator and reports it.
func TestSizeReduceDegenerate(t *testing.T) {
	b := mustBasis(t, [][]float64{{0, 0}, {1, 0}})
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)

	var got []lattice.Diagnostic
	reduced, err := lattice.SizeReduce(b, o, 1, 0,
		lattice.WithDiagnosticHook(func(d lattice.Diagnostic) { got = append(got, d) }))
	require.NoError(t, err)
	assert.False(t, reduced)
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}}, b.Rows())
	require.Len(t, got, 1)
	assert.Equal(t, lattice.DegenerateSizeReduction, got[0].Kind)
}

// TestSizeReduceValidation covers index and consistency errors.
func TestSizeReduceValidation(t *testing.T) {
	b := mustBasis(t, [][]float64{{1, 0}, {1, 2}})
	o, err := lattice.GramSchmidt(b)
	require.NoError(t, err)

	_, err = lattice.SizeReduce(b, o, 0, 1)
	require.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
	_, err = lattice.SizeReduce(b, o, 1, 1)
	require.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
	_, err = lattice.SizeReduce(b, o, 2, 0)
	require.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
	_, err = lattice.SizeReduce(nil, o, 1, 0)
	require.ErrorIs(t, err, lattice.ErrNilBasis)

	other, err := lattice.GramSchmidt(mustBasis(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	require.NoError(t, err)
	_, err = lattice.SizeReduce(b, other, 1, 0)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}
