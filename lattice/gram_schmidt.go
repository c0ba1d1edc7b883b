// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/lattice/vector"
)

// Orthogonal is the un-normalized Gram-Schmidt basis b*_0..b*_{n-1} of a
// Basis. Magnitudes are kept because the Lovász condition compares squared
// norms of these vectors directly.
//
// An Orthogonal is only meaningful for the Basis state it was computed
// from; any mutation of the Basis makes it stale until recomputed.
type Orthogonal struct {
	vecs []vector.Vector
	sq   []float64 // sq[i] = ‖b*_i‖²
}

// Len returns the number of orthogonal vectors.
func (o *Orthogonal) Len() int { return len(o.vecs) }

// Vector returns a copy of b*_i, or nil when i is out of range.
func (o *Orthogonal) Vector(i int) vector.Vector {
	if i < 0 || i >= len(o.vecs) {
		return nil
	}

	return o.vecs[i].Clone()
}

// SquaredNorm returns ‖b*_i‖², or 0 when i is out of range.
func (o *Orthogonal) SquaredNorm(i int) float64 {
	if i < 0 || i >= len(o.sq) {
		return 0
	}

	return o.sq[i]
}

// GramSchmidt computes the classical, non-normalized Gram-Schmidt basis of b.
//
// Element i is b_i with its projections onto b*_0..b*_{i-1} removed, in
// increasing index order. A projection onto a b*_j whose squared norm is
// below the degeneracy tolerance is skipped and reported as a
// DegenerateProjection diagnostic.
//
// Errors:
//   - ErrNilBasis if b is nil.
//
// Complexity: O(n²·d).
func GramSchmidt(b *Basis, opts ...Option) (*Orthogonal, error) {
	if b == nil {
		return nil, latticeErrorf(opGramSchmidt, ErrNilBasis)
	}
	o := gatherOptions(opts...)
	e := newEngine(b, &o)
	if err := e.orthogonalize(); err != nil {
		return nil, latticeErrorf(opGramSchmidt, err)
	}

	return e.ortho, nil
}

// engine owns the Orthogonal of one reduction call and keeps it in sync
// with the Basis it mutates.
type engine struct {
	basis *Basis
	ortho *Orthogonal
	opts  *Options
	stats Stats
}

func newEngine(b *Basis, o *Options) *engine {
	n := b.Len()
	ortho := &Orthogonal{vecs: make([]vector.Vector, n), sq: make([]float64, n)}
	for i := range ortho.vecs {
		ortho.vecs[i] = make(vector.Vector, b.Dim())
	}

	return &engine{basis: b, ortho: ortho, opts: o}
}

// orthogonalize recomputes every b*_i from scratch, reusing storage.
func (e *engine) orthogonalize() error {
	var (
		i, j    int
		applied bool
		err     error
	)
	for i = 0; i < e.basis.Len(); i++ {
		cur := e.ortho.vecs[i]
		copy(cur, e.basis.vecs[i])
		for j = 0; j < i; j++ {
			applied, err = vector.RemoveProjection(cur, e.ortho.vecs[j], e.opts.tol)
			if err != nil {
				return err
			}
			if !applied {
				e.stats.SkippedProjections++
				e.opts.emit(Diagnostic{Kind: DegenerateProjection, K: i, L: j, Denominator: e.ortho.sq[j]})
			}
		}
		e.ortho.sq[i] = vector.SquaredNorm(cur)
	}

	return nil
}
