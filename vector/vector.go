// SPDX-License-Identifier: MIT

package vector

import "math"

// ZeroSum is the additive identity used to seed accumulations.
const ZeroSum = 0.0

// Vector is an ordered sequence of float64 components.
// A Vector is a plain slice: kernels that mutate it do so in place.
type Vector []float64

// Clone returns a deep copy of v. A nil v yields nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Dot returns Σ a[i]·b[i].
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(n).
func Dot(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthErrorf(opDot, len(a), len(b))
	}

	return dot(a, b), nil
}

// Norm returns the Euclidean length √(v·v). The result is always ≥ 0.
// Complexity: O(n).
func Norm(v Vector) float64 {
	return math.Sqrt(dot(v, v))
}

// SquaredNorm returns v·v without taking the square root.
func SquaredNorm(v Vector) float64 {
	return dot(v, v)
}

// RemoveProjection eliminates the component of target along onto, in place:
//
//	target -= (target·onto / onto·onto) · onto
//
// Implementation:
//   - Stage 1: validate lengths and tol.
//   - Stage 2: if |onto·onto| < tol the call is a no-op (applied=false);
//     dividing by a near-zero denominator would blow up degenerate inputs.
//   - Stage 3: subtract the scaled projection with a fixed 0..n-1 walk.
//
// Returns applied=true when target was modified (or would have been, when
// the coefficient is exactly zero).
//
// Errors:
//   - ErrDimensionMismatch if len(target) != len(onto).
//   - ErrNegativeTolerance if tol < 0 or NaN.
//
// Complexity: O(n).
func RemoveProjection(target, onto Vector, tol float64) (bool, error) {
	if len(target) != len(onto) {
		return false, lengthErrorf(opRemoveProjection, len(target), len(onto))
	}
	if tol < 0 || math.IsNaN(tol) {
		return false, vectorErrorf(opRemoveProjection, ErrNegativeTolerance)
	}

	denom := dot(onto, onto)
	if math.Abs(denom) < tol {
		return false, nil
	}
	coef := dot(target, onto) / denom
	subScaled(target, onto, coef)

	return true, nil
}

// SubScaled performs dst -= mu·src in place.
//
// Errors:
//   - ErrDimensionMismatch if len(dst) != len(src).
//
// Complexity: O(n).
func SubScaled(dst, src Vector, mu float64) error {
	if len(dst) != len(src) {
		return lengthErrorf(opSubScaled, len(dst), len(src))
	}
	subScaled(dst, src, mu)

	return nil
}

// dot assumes len(a) == len(b).
func dot(a, b Vector) float64 {
	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// subScaled assumes len(dst) == len(src).
func subScaled(dst, src Vector, mu float64) {
	for i := range dst {
		dst[i] -= mu * src[i]
	}
}
