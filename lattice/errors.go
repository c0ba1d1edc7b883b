// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
//
// Degenerate denominators are NOT errors: they are reported through the
// Diagnostic side channel and the reduction keeps going.

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBasis indicates that a nil *Basis was passed.
	ErrNilBasis = errors.New("lattice: nil basis")

	// ErrEmptyBasis indicates a basis with no vectors or zero-length vectors.
	ErrEmptyBasis = errors.New("lattice: empty basis")

	// ErrDimensionMismatch indicates vectors of unequal length, or an
	// orthogonal basis that does not belong to the given basis.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrNonSquare indicates that vector count != dimension without WithRectangular.
	ErrNonSquare = errors.New("lattice: basis is not square")

	// ErrNaNInf indicates a NaN or ±Inf component.
	ErrNaNInf = errors.New("lattice: NaN or Inf component")

	// ErrIndexOutOfRange indicates an invalid vector index (including l >= k in SizeReduce).
	ErrIndexOutOfRange = errors.New("lattice: index out of range")

	// ErrIterationLimit is returned when the LLL loop exceeds WithMaxIterations.
	// The basis is left in its current state, which still spans the same lattice.
	ErrIterationLimit = errors.New("lattice: iteration limit exceeded")
)

// Operation tags used when wrapping sentinels.
const (
	opNewBasis    = "NewBasis"
	opFromMatrix  = "FromMatrix"
	opToMatrix    = "ToMatrix"
	opSwap        = "Swap"
	opGramSchmidt = "GramSchmidt"
	opSizeReduce  = "SizeReduce"
	opLLL         = "LLL"
	opKZ          = "KZ"
	opReduce      = "Reduce"
	opAnalyze     = "Analyze"
)

// latticeErrorf wraps err with an operation tag, preserving it for errors.Is.
func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
