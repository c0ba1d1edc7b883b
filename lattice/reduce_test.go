package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lattice/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduceFixtures covers the end-to-end LLL+KZ pipeline.
func TestReduceFixtures(t *testing.T) {
	tests := []struct {
		name     string
		in, want [][]float64
		norm     float64
	}{
		{"single size reduction", [][]float64{{1, 0}, {1, 2}}, [][]float64{{1, 0}, {0, 2}}, 1},
		{"round half away", [][]float64{{2, 0}, {1, 1}}, [][]float64{{-1, 1}, {1, 1}}, math.Sqrt2},
		{"already reduced", [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}, 1},
		{"small3", small3, [][]float64{{0, 1, 0}, {1, 0, 1}, {-1, 0, 2}}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBasis(t, tc.in)
			res, err := lattice.Reduce(b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Rows())
			assert.InDelta(t, tc.norm, res.ShortestNorm, 1e-15)
		})
	}
}

// TestReduceFormatsLikeResultFile pins the 15-digit rendering of the two-dimensional fixtures.
func TestReduceFormatsLikeResultFile(t *testing.T) {
	b := mustBasis(t, [][]float64{{1, 0}, {1, 2}})
	res, err := lattice.Reduce(b)
	require.NoError(t, err)
	assert.Equal(t, "1.000000000000000", formatNorm(res.ShortestNorm))

	b = mustBasis(t, [][]float64{{2, 0}, {1, 1}})
	res, err = lattice.Reduce(b)
	require.NoError(t, err)
	assert.Equal(t, "1.414213562373095", formatNorm(res.ShortestNorm))
}

// TestReduceIdempotent: a second run leaves the output unchanged.
func TestReduceIdempotent(t *testing.T) {
	for _, in := range [][][]float64{
		{{1, 0}, {1, 2}},
		{{2, 0}, {1, 1}},
		small3,
	} {
		b := mustBasis(t, in)
		_, err := lattice.Reduce(b)
		require.NoError(t, err)
		first := b.Rows()

		res, err := lattice.Reduce(b)
		require.NoError(t, err)
		assert.Equal(t, first, b.Rows())
		assert.Equal(t, 0, res.LLL.Swaps)
	}
}

// TestReduceKnapsack6 checks the shortest vector found on a 6-dimensional basis.
func TestReduceKnapsack6(t *testing.T) {
	b := mustBasis(t, knapsack6)
	before := absDet(t, b)

	res, err := lattice.Reduce(b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(715), res.ShortestNorm, 1e-9)
	assert.Equal(t, 43, res.LLL.Iterations)
	assert.Equal(t, 21, res.LLL.Swaps)
	assert.InDelta(t, before, absDet(t, b), before*1e-9)
	for i := 1; i < b.Len(); i++ {
		assert.LessOrEqual(t, b.Norm(i-1), b.Norm(i))
	}
}

// TestReduceDegenerateEmitsDiagnostic: zero vector, no crash, diagnostic logged.
func TestReduceDegenerateEmitsDiagnostic(t *testing.T) {
	var n int
	b := mustBasis(t, [][]float64{{0, 0}, {1, 0}})
	res, err := lattice.Reduce(b, lattice.WithDiagnosticHook(func(d lattice.Diagnostic) {
		if d.Kind == lattice.DegenerateSizeReduction {
			n++
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.ShortestNorm)
	assert.Equal(t, 2, n, "one skip in LLL, one in KZ")
	assert.Equal(t, 1, res.LLL.SkippedReductions)
	assert.Equal(t, 1, res.KZ.SkippedReductions)
}

// TestReduceIterationLimit surfaces the cap and skips the KZ pass.
func TestReduceIterationLimit(t *testing.T) {
	b := mustBasis(t, knapsack6)
	res, err := lattice.Reduce(b, lattice.WithMaxIterations(3))
	require.ErrorIs(t, err, lattice.ErrIterationLimit)
	assert.Equal(t, 3, res.LLL.Iterations)
	assert.Zero(t, res.ShortestNorm)

	_, err = lattice.Reduce(nil)
	require.ErrorIs(t, err, lattice.ErrNilBasis)
}
