// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/lattice/matrix"
	"github.com/katalvlaran/lattice/vector"
)

// Quality reports reduction-quality measures of a basis.
type Quality struct {
	ShortestNorm        float64 // ‖b_0‖
	Volume              float64 // Π ‖b*_i‖ (= |det B|); √det(B·Bᵀ) when count != dimension
	OrthogonalityDefect float64 // Π ‖b_i‖ / Volume, ≥ 1; +Inf for a degenerate basis
	HermiteFactor       float64 // ‖b_0‖ / Volume^(1/n); +Inf for a degenerate basis
	MaxCoefficient      float64 // max |μ_{k,l}| over l < k
	SizeReduced         bool    // MaxCoefficient ≤ 0.5 + ε
	LLLReduced          bool    // SizeReduced and the Lovász test holds (within ε) for every k
}

// Lovasz reports ‖b*_k‖² ≥ δ·‖b*_{k-1}‖²; it holds vacuously at k == 0
// and is false for out-of-range k.
func (o *Orthogonal) Lovasz(k int, delta float64) bool {
	if k == 0 {
		return true
	}
	if k < 0 || k >= len(o.sq) {
		return false
	}

	return o.sq[k] >= delta*o.sq[k-1]
}

// Analyze computes the Quality of b without mutating it. The Lovász factor
// (WithDelta), slack (WithEpsilon) and degeneracy tolerance apply.
//
// Complexity: O(n²·d).
func Analyze(b *Basis, opts ...Option) (Quality, error) {
	if b == nil {
		return Quality{}, latticeErrorf(opAnalyze, ErrNilBasis)
	}
	if b.Len() == 0 {
		return Quality{}, latticeErrorf(opAnalyze, ErrEmptyBasis)
	}
	o := gatherOptions(opts...)
	e := newEngine(b, &o)
	if err := e.orthogonalize(); err != nil {
		return Quality{}, latticeErrorf(opAnalyze, err)
	}
	n := b.Len()

	var q Quality
	q.ShortestNorm = vector.Norm(b.vecs[0])

	// volume and defect accumulate in log space to avoid overflow on large bases
	logVol, logProd := 0.0, 0.0
	for i := 0; i < n; i++ {
		logVol += 0.5 * math.Log(e.ortho.sq[i])
		logProd += math.Log(vector.Norm(b.vecs[i]))
	}
	if n != b.Dim() {
		v, err := gramLogVolume(b)
		if err != nil {
			return Quality{}, latticeErrorf(opAnalyze, err)
		}
		logVol = v
	}
	q.Volume = math.Exp(logVol)
	if q.Volume == 0 {
		q.OrthogonalityDefect = math.Inf(1)
		q.HermiteFactor = math.Inf(1)
	} else {
		q.OrthogonalityDefect = math.Exp(logProd - logVol)
		q.HermiteFactor = q.ShortestNorm / math.Exp(logVol/float64(n))
	}

	lovasz := true
	for k := 1; k < n; k++ {
		for l := 0; l < k; l++ {
			q.MaxCoefficient = math.Max(q.MaxCoefficient, math.Abs(e.coefficient(k, l)))
		}
		if e.ortho.sq[k] < o.delta*e.ortho.sq[k-1]-o.eps {
			lovasz = false
		}
	}
	q.SizeReduced = q.MaxCoefficient <= 0.5+o.eps
	q.LLLReduced = q.SizeReduced && lovasz

	return q, nil
}

// gramLogVolume returns log √det(B·Bᵀ), the volume of a basis whose vector
// count differs from its dimension. A non-positive Gram determinant
// (dependent vectors) yields -Inf.
func gramLogVolume(b *Basis) (float64, error) {
	m, err := b.ToMatrix()
	if err != nil {
		return 0, err
	}
	g, err := matrix.Gram(m)
	if err != nil {
		return 0, err
	}
	det, err := matrix.Det(g)
	if err != nil {
		return 0, err
	}
	if det <= 0 {
		return math.Inf(-1), nil
	}

	return 0.5 * math.Log(det), nil
}

// IsSizeReduced reports whether every |μ_{k,l}| ≤ 0.5 (within WithEpsilon).
func IsSizeReduced(b *Basis, opts ...Option) (bool, error) {
	q, err := Analyze(b, opts...)

	return q.SizeReduced, err
}

// IsLLLReduced reports whether b is size-reduced and satisfies the Lovász
// condition at every index (within WithEpsilon).
func IsLLLReduced(b *Basis, opts ...Option) (bool, error) {
	q, err := Analyze(b, opts...)

	return q.LLLReduced, err
}
