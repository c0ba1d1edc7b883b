// SPDX-License-Identifier: MIT

// Package lattice: functional configuration for the reduction engine.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every knob has a documented default constant below.
//   - WithX constructors panic only on nonsensical values (programmer error).
package lattice

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDegeneracyTolerance is the squared-norm threshold below which a
	// vector is treated as zero: projections onto it and size reductions
	// against it are skipped.
	DefaultDegeneracyTolerance = 1e-15

	// DefaultDelta is the Lovász factor: ‖b*_k‖² ≥ δ·‖b*_{k-1}‖².
	DefaultDelta = 0.75

	// DefaultMaxIterations of 0 means the LLL loop is unbounded.
	DefaultMaxIterations = 0

	// DefaultEpsilon is the slack used by the quality checks (IsSizeReduced,
	// IsLLLReduced) to absorb floating-point noise.
	DefaultEpsilon = 1e-9

	// DefaultAllowRectangular requires count == dimension.
	DefaultAllowRectangular = false
)

// Lovász factor bounds: δ ∈ (1/4, 3/4].
// The test compares ‖b*_k‖² against δ·‖b*_{k-1}‖² without the μ² term, so a
// swap only shrinks ‖b*_{k-1}‖² when δ + 1/4 ≤ 1. Larger δ can cycle forever.
const (
	minDelta = 0.25
	maxDelta = 0.75
)

const (
	panicToleranceInvalid = "lattice: WithDegeneracyTolerance: tol must be finite and non-negative"
	panicDeltaInvalid     = "lattice: WithDelta: delta must be in (0.25, 0.75]"
	panicMaxIterInvalid   = "lattice: WithMaxIterations: n must be non-negative"
	panicEpsilonInvalid   = "lattice: WithEpsilon: eps must be finite and non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol         float64 // DefaultDegeneracyTolerance
	delta       float64 // DefaultDelta
	maxIter     int     // DefaultMaxIterations (0 = unbounded)
	eps         float64 // DefaultEpsilon
	rectangular bool    // DefaultAllowRectangular

	logger zerolog.Logger   // zerolog.Nop() unless WithLogger
	hook   func(Diagnostic) // nil unless WithDiagnosticHook
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		tol:         DefaultDegeneracyTolerance,
		delta:       DefaultDelta,
		maxIter:     DefaultMaxIterations,
		eps:         DefaultEpsilon,
		rectangular: DefaultAllowRectangular,
		logger:      zerolog.Nop(),
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDegeneracyTolerance sets the near-zero threshold for squared norms.
// Panics if tol is negative, NaN or Inf.
func WithDegeneracyTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithDelta sets the Lovász factor δ. Panics unless 0.25 < δ ≤ 0.75.
func WithDelta(delta float64) Option {
	if !(delta > minDelta && delta <= maxDelta) {
		panic(panicDeltaInvalid)
	}

	return func(o *Options) { o.delta = delta }
}

// WithMaxIterations caps the number of LLL loop iterations; 0 disables the cap.
// Floating-point rounding can in principle keep the Lovász test from ever
// stabilizing, so callers needing bounded run time should set a cap.
// Panics on negative n.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithEpsilon sets the slack used by quality checks. Panics on negative/NaN/Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRectangular lets NewBasis accept count != dimension.
func WithRectangular() Option {
	return func(o *Options) { o.rectangular = true }
}

// WithLogger routes diagnostics and progress events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithDiagnosticHook registers fn to receive every Diagnostic.
func WithDiagnosticHook(fn func(Diagnostic)) Option {
	return func(o *Options) { o.hook = fn }
}
