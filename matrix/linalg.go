// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by lattice bookkeeping.
//
// Notes:
//   - Every kernel copies its input into a *Dense first (fast flat loops,
//     fixed i→j→k order), so any Matrix implementation is accepted.
//   - Inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// ZeroPivot marks an exactly singular elimination step.
const ZeroPivot = 0.0

// asDense returns m's *Dense view, cloning other implementations via At.
// The returned Dense may alias m when m is already *Dense; callers must not mutate it.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Gram returns G = m·mᵀ, the r×r matrix of pairwise row dot products.
// For a lattice basis stored row-wise, G[i][j] = ⟨b_i, b_j⟩.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//
// Complexity: O(r²·c).
func Gram(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	r, c := src.r, src.c
	res, err := NewDense(r, r)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < r; i++ {
		for j = i; j < r; j++ {
			sum = ZeroSum
			for k = 0; k < c; k++ {
				sum += src.data[i*c+k] * src.data[j*c+k]
			}
			res.data[i*r+j] = sum
			res.data[j*r+i] = sum // symmetric
		}
	}

	return res, nil
}

// Det returns the determinant of a square matrix using Gaussian elimination
// with partial pivoting. A singular matrix yields 0 with a nil error.
//
// Implementation:
//   - Stage 1: validate non-nil and square; copy into a scratch buffer.
//   - Stage 2: for each column pick the row with the largest |pivot|,
//     swap it up (flipping the sign) and eliminate below.
//   - Stage 3: multiply the diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n³) time, O(n²) memory.
func Det(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	src, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := src.r
	a := make([]float64, len(src.data))
	copy(a, src.data)

	det := 1.0
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// Stage 2.1: partial pivot search
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return 0, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}
		// Stage 2.2: eliminate below the pivot
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
		det *= a[k*n+k]
	}

	return det, nil
}
