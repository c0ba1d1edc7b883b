// Package lattice is a small toolkit for lattice basis reduction: take n
// linearly independent vectors, find a basis of the same lattice made of
// short, nearly orthogonal vectors, and report the shortest one.
//
// 🚀 What is inside?
//
//	• vector/  — dot products, norms and in-place projection removal on []float64
//	• matrix/  — dense row-major matrices, transpose, Gram matrix, determinant
//	• lattice/ — Basis, Gram–Schmidt, size reduction, LLL, a KZ-style pass,
//	             quality measures (orthogonality defect, Hermite factor)
//	• cmd/latred — command-line front end writing result.txt
//
// ✨ Why this shape?
//
//   - Deterministic – single-threaded, no hidden state, same input gives same bits
//   - Degenerate input never aborts – skipped steps surface as Diagnostics
//   - Tunable – tolerance, Lovász factor and iteration cap are functional options
//
// Quick example:
//
//	    b_0 = (1,0)            b_0 = (1,0)
//	    b_1 = (1,2)   ──▶      b_1 = (0,2)      shortest ‖b_0‖ = 1
//
// From the command line:
//
//	go run ./cmd/latred [1 0] [1 2] && cat result.txt
//	1.000000000000000
package lattice
