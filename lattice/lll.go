// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
)

// Stats counts the work done by one LLL or KZ call.
type Stats struct {
	Iterations         int // LLL loop passes (0 for KZ)
	Swaps              int // Lovász failures
	SizeReductions     int // size reductions that changed a vector
	SkippedReductions  int // DegenerateSizeReduction diagnostics
	SkippedProjections int // DegenerateProjection diagnostics
}

// LLL reduces b in place with the Lenstra–Lenstra–Lovász algorithm.
//
// State machine over the working index k ∈ [1, n):
//
//	init:    b* = GramSchmidt(b); k = 1
//	reduce:  for j = k..1: SizeReduce(k, j-1)   (nearest earlier vector first)
//	test:    ‖b*_k‖² ≥ δ·‖b*_{k-1}‖² ?
//	  holds: k = k+1
//	  fails: swap(b_k, b_{k-1}); b* = GramSchmidt(b); k = max(k-1, 1)
//	stop:    k == n
//
// Termination follows from the classical potential-function argument for
// exact inputs. Floating-point rounding can in principle violate it; use
// WithMaxIterations to bound the loop (ErrIterationLimit is returned and b
// is left mid-reduction but still a basis of the same lattice).
//
// Errors:
//   - ErrNilBasis, ErrEmptyBasis, ErrIterationLimit.
//
// Complexity: each iteration costs O(k·n²·d) because every size reduction
// re-orthogonalizes from scratch.
func LLL(b *Basis, opts ...Option) (Stats, error) {
	if b == nil {
		return Stats{}, latticeErrorf(opLLL, ErrNilBasis)
	}
	if b.Len() == 0 {
		return Stats{}, latticeErrorf(opLLL, ErrEmptyBasis)
	}
	o := gatherOptions(opts...)
	e := newEngine(b, &o)
	if err := e.lll(); err != nil {
		return e.stats, latticeErrorf(opLLL, err)
	}

	return e.stats, nil
}

func (e *engine) lll() error {
	if err := e.orthogonalize(); err != nil {
		return err
	}
	s := e.basis.Len()
	k := 1
	for k < s {
		if e.opts.maxIter > 0 && e.stats.Iterations >= e.opts.maxIter {
			return fmt.Errorf("after %d iterations at k=%d: %w", e.stats.Iterations, k, ErrIterationLimit)
		}
		e.stats.Iterations++

		for j := k; j > 0; j-- {
			if _, err := e.sizeReduce(k, j-1); err != nil {
				return err
			}
		}

		if e.ortho.Lovasz(k, e.opts.delta) {
			k++
			continue
		}
		e.basis.vecs[k], e.basis.vecs[k-1] = e.basis.vecs[k-1], e.basis.vecs[k]
		e.stats.Swaps++
		if err := e.orthogonalize(); err != nil {
			return err
		}
		k = max(k-1, 1)
	}

	e.opts.logger.Debug().
		Int("vectors", s).
		Int("iterations", e.stats.Iterations).
		Int("swaps", e.stats.Swaps).
		Int("size_reductions", e.stats.SizeReductions).
		Msg("lll reduction complete")

	return nil
}
