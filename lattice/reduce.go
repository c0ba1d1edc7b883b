// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/lattice/vector"
)

// Result summarizes a full Reduce run.
type Result struct {
	ShortestNorm float64 // ‖b_0‖ after the KZ pass
	LLL          Stats
	KZ           Stats
}

// Reduce runs LLL followed by the KZ pass on b, in place, and reports the
// norm of the first (shortest) basis vector.
//
// Degenerate inputs never fail the run: they surface as Diagnostics and a
// possibly weaker reduction. The only errors are a nil or empty basis and
// ErrIterationLimit from a caller-imposed cap.
func Reduce(b *Basis, opts ...Option) (Result, error) {
	if b == nil {
		return Result{}, latticeErrorf(opReduce, ErrNilBasis)
	}
	if b.Len() == 0 {
		return Result{}, latticeErrorf(opReduce, ErrEmptyBasis)
	}
	o := gatherOptions(opts...)

	var res Result
	lllEngine := newEngine(b, &o)
	err := lllEngine.lll()
	res.LLL = lllEngine.stats
	if err != nil {
		return res, latticeErrorf(opReduce, latticeErrorf(opLLL, err))
	}

	kzEngine := newEngine(b, &o)
	err = kzEngine.kz()
	res.KZ = kzEngine.stats
	if err != nil {
		return res, latticeErrorf(opReduce, latticeErrorf(opKZ, err))
	}
	res.ShortestNorm = vector.Norm(b.vecs[0])

	o.logger.Info().
		Int("vectors", b.Len()).
		Int("dimension", b.Dim()).
		Int("swaps", res.LLL.Swaps).
		Float64("shortest_norm", res.ShortestNorm).
		Msg("basis reduced")

	return res, nil
}
