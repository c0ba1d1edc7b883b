package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lattice/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeOrthogonal: an orthogonal basis has defect 1 and is LLL-reduced.
func TestAnalyzeOrthogonal(t *testing.T) {
	q, err := lattice.Analyze(mustBasis(t, [][]float64{{1, 0}, {0, 2}}))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, q.ShortestNorm, 1e-12)
	assert.InDelta(t, 2.0, q.Volume, 1e-12)
	assert.InDelta(t, 1.0, q.OrthogonalityDefect, 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, q.HermiteFactor, 1e-12)
	assert.Zero(t, q.MaxCoefficient)
	assert.True(t, q.SizeReduced)
	assert.True(t, q.LLLReduced)
}

// TestAnalyzeUnreduced flags a basis that needs size reduction.
func TestAnalyzeUnreduced(t *testing.T) {
	b := mustBasis(t, [][]float64{{1, 0}, {1, 2}})
	q, err := lattice.Analyze(b)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, q.MaxCoefficient, 1e-12)
	assert.False(t, q.SizeReduced)
	assert.False(t, q.LLLReduced)
	assert.InDelta(t, math.Sqrt(5)/2, q.OrthogonalityDefect, 1e-12)
	assert.Equal(t, [][]float64{{1, 0}, {1, 2}}, b.Rows(), "Analyze must not mutate")

	ok, err := lattice.IsSizeReduced(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestAnalyzeLovaszFailure: size-reduced but failing the Lovász test.
func TestAnalyzeLovaszFailure(t *testing.T) {
	b := mustBasis(t, [][]float64{{2, 0}, {0, 1}})

	ok, err := lattice.IsSizeReduced(b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = lattice.IsLLLReduced(b)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = lattice.IsLLLReduced(mustBasis(t, [][]float64{{2, 0}, {0, 1.9}}), lattice.WithDelta(0.5))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestAnalyzeDegenerate reports infinite defect for a zero volume.
func TestAnalyzeDegenerate(t *testing.T) {
	q, err := lattice.Analyze(mustBasis(t, [][]float64{{0, 0}, {1, 0}}))
	require.NoError(t, err)
	assert.Zero(t, q.Volume)
	assert.True(t, math.IsInf(q.OrthogonalityDefect, 1))
	assert.True(t, math.IsInf(q.HermiteFactor, 1))

	_, err = lattice.Analyze(nil)
	require.ErrorIs(t, err, lattice.ErrNilBasis)
}

// TestOrthogonalLovasz covers the boundary indices.
func TestOrthogonalLovasz(t *testing.T) {
	o, err := lattice.GramSchmidt(mustBasis(t, [][]float64{{2, 0}, {0, 1}}))
	require.NoError(t, err)

	assert.True(t, o.Lovasz(0, 0.75))
	assert.False(t, o.Lovasz(1, 0.75))
	assert.True(t, o.Lovasz(1, 0.25))
	assert.False(t, o.Lovasz(2, 0.75))
}

// TestAnalyzeRectangularVolume measures fewer vectors than dimensions
// through the Gram determinant.
func TestAnalyzeRectangularVolume(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		vol  float64
	}{
		{"axis aligned", [][]float64{{1, 0, 0}, {0, 2, 0}}, 2},
		{"skew", [][]float64{{1, 1, 0}, {0, 1, 1}}, math.Sqrt(3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBasis(t, tc.rows, lattice.WithRectangular())
			q, err := lattice.Analyze(b)
			require.NoError(t, err)
			assert.InDelta(t, tc.vol, q.Volume, 1e-12)
			assert.False(t, math.IsInf(q.OrthogonalityDefect, 0))
		})
	}
}

// TestAnalyzeRectangularDependent reports zero volume for more vectors than dimensions.
func TestAnalyzeRectangularDependent(t *testing.T) {
	b := mustBasis(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}, lattice.WithRectangular())
	q, err := lattice.Analyze(b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.Volume)
	assert.True(t, math.IsInf(q.OrthogonalityDefect, 1))
}
