// SPDX-License-Identifier: MIT

package lattice

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lattice/vector"
)

// KZ runs the Korkin–Zolotarev-style cleanup pass on an LLL-reduced basis.
//
// Steps:
//  1. b* = GramSchmidt(b).
//  2. For i = 0..n-1, for j = i+1..n-1: SizeReduce(j, i).
//  3. Stable sort of b by ascending Euclidean norm (ties keep their order).
//  4. b* = GramSchmidt(b) once more.
//
// This is a pairwise size reduction plus sort, not canonical KZ reduction:
// no shortest vector of any projected sublattice is enumerated. b_0 is the
// shortest basis vector afterwards, not necessarily the shortest lattice vector.
//
// Errors:
//   - ErrNilBasis, ErrEmptyBasis.
//
// Complexity: O(n²) size reductions, each O(n²·d), plus O(n log n · d) for the sort.
func KZ(b *Basis, opts ...Option) (Stats, error) {
	if b == nil {
		return Stats{}, latticeErrorf(opKZ, ErrNilBasis)
	}
	if b.Len() == 0 {
		return Stats{}, latticeErrorf(opKZ, ErrEmptyBasis)
	}
	o := gatherOptions(opts...)
	e := newEngine(b, &o)
	if err := e.kz(); err != nil {
		return e.stats, latticeErrorf(opKZ, err)
	}

	return e.stats, nil
}

func (e *engine) kz() error {
	if err := e.orthogonalize(); err != nil {
		return err
	}
	s := e.basis.Len()
	var i, j int
	for i = 0; i < s; i++ {
		for j = i + 1; j < s; j++ {
			if _, err := e.sizeReduce(j, i); err != nil {
				return err
			}
		}
	}

	e.sortByNorm()
	if err := e.orthogonalize(); err != nil {
		return err
	}

	e.opts.logger.Debug().
		Int("vectors", s).
		Int("size_reductions", e.stats.SizeReductions).
		Float64("shortest_norm", vector.Norm(e.basis.vecs[0])).
		Msg("kz pass complete")

	return nil
}

// sortByNorm stable-sorts the basis vectors by ascending norm.
func (e *engine) sortByNorm() {
	type keyed struct {
		v    vector.Vector
		norm float64
	}
	items := make([]keyed, e.basis.Len())
	for i, v := range e.basis.vecs {
		items[i] = keyed{v: v, norm: vector.Norm(v)}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(a.norm, b.norm)
	})
	for i := range items {
		e.basis.vecs[i] = items[i].v
	}
}
