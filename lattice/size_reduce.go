// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/vector"
)

// SizeReduce reduces b_k by the nearest-integer multiple of b_l (l < k)
// and then recomputes ortho in place from the mutated basis.
//
// Implementation:
//   - Stage 1: denom = ‖b*_l‖². Below the degeneracy tolerance nothing is
//     mutated and a DegenerateSizeReduction diagnostic is emitted.
//   - Stage 2: μ = round(⟨b_k, b*_l⟩ / denom), rounding half away from zero
//     (so 0.5 → 1, -0.5 → -1).
//   - Stage 3: if μ ≠ 0, b_k -= μ·b_l and ortho is fully recomputed.
//     μ == 0 leaves both untouched; the result is identical.
//
// ortho must come from GramSchmidt(b) (or a previous SizeReduce on b).
// Returns reduced=true when b_k changed.
//
// Errors:
//   - ErrNilBasis, ErrDimensionMismatch (ortho does not match b),
//     ErrIndexOutOfRange (k or l out of range, or l >= k).
//
// Complexity: O(d) for the update plus O(n²·d) for re-orthogonalization.
func SizeReduce(b *Basis, ortho *Orthogonal, k, l int, opts ...Option) (bool, error) {
	if b == nil || ortho == nil {
		return false, latticeErrorf(opSizeReduce, ErrNilBasis)
	}
	if ortho.Len() != b.Len() {
		return false, latticeErrorf(opSizeReduce, fmt.Errorf("%d orthogonal vectors for %d basis vectors: %w", ortho.Len(), b.Len(), ErrDimensionMismatch))
	}
	if err := b.checkIndex(k); err != nil {
		return false, latticeErrorf(opSizeReduce, err)
	}
	if l < 0 || l >= k {
		return false, latticeErrorf(opSizeReduce, fmt.Errorf("l=%d must satisfy 0 <= l < k=%d: %w", l, k, ErrIndexOutOfRange))
	}
	o := gatherOptions(opts...)
	e := &engine{basis: b, ortho: ortho, opts: &o}

	reduced, err := e.sizeReduce(k, l)
	if err != nil {
		return false, latticeErrorf(opSizeReduce, err)
	}

	return reduced, nil
}

// sizeReduce assumes valid indices and a consistent e.ortho.
func (e *engine) sizeReduce(k, l int) (bool, error) {
	denom := e.ortho.sq[l]
	if math.Abs(denom) < e.opts.tol {
		e.stats.SkippedReductions++
		e.opts.emit(Diagnostic{Kind: DegenerateSizeReduction, K: k, L: l, Denominator: denom})

		return false, nil
	}
	num, err := vector.Dot(e.basis.vecs[k], e.ortho.vecs[l])
	if err != nil {
		return false, err
	}
	mu := math.Round(num / denom)
	if mu == 0 {
		return false, nil
	}
	if err = vector.SubScaled(e.basis.vecs[k], e.basis.vecs[l], mu); err != nil {
		return false, err
	}
	e.stats.SizeReductions++

	return true, e.orthogonalize()
}

// coefficient returns μ_{k,l} = ⟨b_k, b*_l⟩ / ‖b*_l‖², or 0 for a degenerate b*_l.
func (e *engine) coefficient(k, l int) float64 {
	denom := e.ortho.sq[l]
	if math.Abs(denom) < e.opts.tol {
		return 0
	}
	num, _ := vector.Dot(e.basis.vecs[k], e.ortho.vecs[l])

	return num / denom
}
