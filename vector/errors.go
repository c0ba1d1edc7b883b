// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNegativeTolerance is returned when a degeneracy tolerance is negative or NaN.
	ErrNegativeTolerance = errors.New("vector: tolerance must be finite and non-negative")
)

// Operation tags used when wrapping sentinels.
const (
	opDot              = "Dot"
	opRemoveProjection = "RemoveProjection"
	opSubScaled        = "SubScaled"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// lengthErrorf reports two mismatching operand lengths under tag.
func lengthErrorf(tag string, la, lb int) error {
	return vectorErrorf(tag, fmt.Errorf("len %d vs %d: %w", la, lb, ErrDimensionMismatch))
}
