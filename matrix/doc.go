// Package matrix provides a small row-major float64 matrix used as the
// interchange format for lattice bases.
//
// The matrix package provides:
//
//   - Dense, a flat-slice implementation of the Matrix interface with
//     bounds-checked At/Set and deep Clone.
//   - NewDenseFromRows for ingesting [][]float64 data with strict shape and
//     finite-value validation.
//   - Gram (A·Aᵀ) and Det (Gaussian elimination with partial pivoting), the
//     kernels lattice reduction needs to measure volume and to cross-check
//     that a unimodular transformation preserved it.
//
// Every public function validates its inputs and returns the sentinels in
// errors.go, wrapped with an operation tag; nothing panics on user input.
package matrix
