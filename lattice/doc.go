// Package lattice reduces integer (or real) lattice bases with the
// Lenstra–Lenstra–Lovász algorithm followed by a Korkin–Zolotarev-style
// cleanup pass, and reports the norm of the shortest resulting vector.
//
// 🚀 What is inside?
//
//	NewBasis / FromMatrix — validated, deep-copied basis (one vector per row)
//	GramSchmidt           — un-normalized orthogonal basis b*
//	SizeReduce            — b_k -= round(μ_{k,l})·b_l, then full re-orthogonalization
//	LLL                   — size reduction + Lovász test, swap and backtrack
//	KZ                    — pairwise size reduction in (i,j) order + stable sort by norm
//	Reduce                — LLL then KZ, returns ‖b_0‖
//	Analyze               — volume, orthogonality defect, Hermite factor, reducedness
//
// ✨ Numeric policy:
//
//   - μ is rounded half away from zero (math.Round), so ties are deterministic.
//   - Squared norms below the degeneracy tolerance (default 1e-15,
//     WithDegeneracyTolerance) are treated as zero: the projection or size
//     reduction is skipped and a Diagnostic is emitted through WithLogger /
//     WithDiagnosticHook. Degenerate inputs never abort a run.
//   - b* is recomputed from scratch after every basis mutation; it is never
//     trusted while stale.
//   - The LLL loop has no built-in bound. Floating-point rounding could in
//     principle keep it from terminating; WithMaxIterations imposes a cap.
//
// ⚙️ Usage:
//
//	b, err := lattice.NewBasis([][]float64{{1, 0}, {1, 2}})
//	if err != nil { ... }
//	res, err := lattice.Reduce(b)
//	// b is now [[1 0] [0 2]], res.ShortestNorm == 1
//
// Everything is single-threaded and synchronous. A *Basis is an exclusively
// owned mutable handle; do not share it between goroutines.
package lattice
