// Package vector provides the dense float64 vector kernels that lattice
// reduction is built on: dot product, Euclidean norm, in-place projection
// removal and scaled subtraction.
//
// 🚀 What is inside?
//
//	Dot              — Σ a[i]·b[i], strict length check
//	Norm             — √(v·v), always ≥ 0
//	RemoveProjection — target -= (target·onto / onto·onto)·onto, in place
//	SubScaled        — dst -= mu·src, in place
//
// ✨ Numeric policy:
//
//   - All kernels walk indices 0..n-1 in a fixed order, so results are
//     bitwise reproducible for identical inputs.
//   - RemoveProjection treats an `onto` vector whose squared norm is below
//     the caller-supplied tolerance as contributing nothing: the call is a
//     no-op and reports applied=false. Callers must not assume full
//     orthogonality for near-degenerate inputs.
//   - Length mismatches are reported as ErrDimensionMismatch; nothing panics
//     on user input.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lattice/vector"
//
//	v := vector.Vector{1, 2}
//	applied, err := vector.RemoveProjection(v, vector.Vector{1, 0}, 1e-15)
//	// v == [0, 2], applied == true
//
// Complexity: every kernel is O(n) time, O(1) extra memory.
package vector
