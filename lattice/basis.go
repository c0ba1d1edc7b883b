// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/matrix"
	"github.com/katalvlaran/lattice/vector"
)

// Basis is an ordered set of equal-length vectors spanning a lattice.
//
// Order is significant: it decides which vectors are size-reduced against
// which, and it is mutated by swaps and sorts. A *Basis is the single
// mutable handle threaded through LLL, KZ and Reduce; it is not safe for
// concurrent use.
type Basis struct {
	vecs []vector.Vector
	dim  int
}

// NewBasis deep-copies rows into a Basis.
//
// Implementation:
//   - Stage 1: reject empty input and zero-length vectors.
//   - Stage 2: every row must have the same length and finite components.
//   - Stage 3: unless WithRectangular is given, count must equal dimension.
//
// Errors:
//   - ErrEmptyBasis, ErrDimensionMismatch, ErrNaNInf, ErrNonSquare.
//
// Complexity: O(n·d).
func NewBasis(rows [][]float64, opts ...Option) (*Basis, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, latticeErrorf(opNewBasis, ErrEmptyBasis)
	}
	dim := len(rows[0])
	b := &Basis{vecs: make([]vector.Vector, len(rows)), dim: dim}
	for i, row := range rows {
		if len(row) != dim {
			return nil, latticeErrorf(opNewBasis, fmt.Errorf("vector %d has %d components, want %d: %w", i, len(row), dim, ErrDimensionMismatch))
		}
		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, latticeErrorf(opNewBasis, fmt.Errorf("vector %d component %d: %w", i, j, ErrNaNInf))
			}
		}
		b.vecs[i] = vector.Vector(row).Clone()
	}
	if !o.rectangular && len(rows) != dim {
		return nil, latticeErrorf(opNewBasis, fmt.Errorf("%d vectors of dimension %d: %w", len(rows), dim, ErrNonSquare))
	}

	return b, nil
}

// FromMatrix builds a Basis whose vectors are the rows of m.
func FromMatrix(m matrix.Matrix, opts ...Option) (*Basis, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, latticeErrorf(opFromMatrix, err)
	}
	rows := make([][]float64, m.Rows())
	var err error
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, latticeErrorf(opFromMatrix, err)
			}
		}
	}
	b, err := NewBasis(rows, opts...)
	if err != nil {
		return nil, latticeErrorf(opFromMatrix, err)
	}

	return b, nil
}

// ToMatrix returns the basis as a Dense matrix, one vector per row.
func (b *Basis) ToMatrix() (*matrix.Dense, error) {
	if b == nil {
		return nil, latticeErrorf(opToMatrix, ErrNilBasis)
	}
	m, err := matrix.NewDenseFromRows(b.Rows())
	if err != nil {
		return nil, latticeErrorf(opToMatrix, err)
	}

	return m, nil
}

// Len returns the number of vectors.
func (b *Basis) Len() int { return len(b.vecs) }

// Dim returns the common vector dimension.
func (b *Basis) Dim() int { return b.dim }

// Vector returns a copy of vector i, or nil when i is out of range.
func (b *Basis) Vector(i int) vector.Vector {
	if i < 0 || i >= len(b.vecs) {
		return nil
	}

	return b.vecs[i].Clone()
}

// Norm returns ‖b_i‖, or NaN when i is out of range.
func (b *Basis) Norm(i int) float64 {
	if i < 0 || i >= len(b.vecs) {
		return math.NaN()
	}

	return vector.Norm(b.vecs[i])
}

// Rows returns a deep copy of the vectors as [][]float64.
func (b *Basis) Rows() [][]float64 {
	out := make([][]float64, len(b.vecs))
	for i, v := range b.vecs {
		out[i] = []float64(v.Clone())
	}

	return out
}

// Clone returns an independent copy of b.
func (b *Basis) Clone() *Basis {
	c := &Basis{vecs: make([]vector.Vector, len(b.vecs)), dim: b.dim}
	for i, v := range b.vecs {
		c.vecs[i] = v.Clone()
	}

	return c
}

// Swap exchanges whole vectors i and j.
func (b *Basis) Swap(i, j int) error {
	if b == nil {
		return latticeErrorf(opSwap, ErrNilBasis)
	}
	if err := b.checkIndex(i); err != nil {
		return latticeErrorf(opSwap, err)
	}
	if err := b.checkIndex(j); err != nil {
		return latticeErrorf(opSwap, err)
	}
	b.vecs[i], b.vecs[j] = b.vecs[j], b.vecs[i]

	return nil
}

// String renders one bracketed vector per line.
func (b *Basis) String() string {
	m, err := b.ToMatrix()
	if err != nil {
		return err.Error()
	}

	return m.String()
}

func (b *Basis) checkIndex(i int) error {
	if i < 0 || i >= len(b.vecs) {
		return fmt.Errorf("index %d of %d: %w", i, len(b.vecs), ErrIndexOutOfRange)
	}

	return nil
}
