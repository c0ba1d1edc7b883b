// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DiagnosticKind classifies a recoverable numeric condition.
type DiagnosticKind int

const (
	// DegenerateSizeReduction: ‖b*_l‖² fell below the tolerance, so
	// b_k was not reduced against b_l.
	DegenerateSizeReduction DiagnosticKind = iota + 1

	// DegenerateProjection: during Gram-Schmidt the projection of b_k onto
	// b*_l was skipped because ‖b*_l‖² fell below the tolerance. b*_k is
	// then not orthogonal to b*_l.
	DegenerateProjection
)

// String implements fmt.Stringer.
func (k DiagnosticKind) String() string {
	switch k {
	case DegenerateSizeReduction:
		return "degenerate_size_reduction"
	case DegenerateProjection:
		return "degenerate_projection"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic describes a skipped operation. It is never returned as an
// error: reduction continues and the result may be of degraded quality.
type Diagnostic struct {
	Kind        DiagnosticKind
	K, L        int     // target and reference indices
	Denominator float64 // the offending squared norm
}

// String renders the diagnostic on one line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: k=%d l=%d denominator=%g", d.Kind, d.K, d.L, d.Denominator)
}

// emit forwards d to the configured hook and logger.
// Size-reduction skips log at Warn; projection skips, which repeat on every
// re-orthogonalization, log at Debug.
func (o *Options) emit(d Diagnostic) {
	if o.hook != nil {
		o.hook(d)
	}
	var ev *zerolog.Event
	if d.Kind == DegenerateSizeReduction {
		ev = o.logger.Warn()
	} else {
		ev = o.logger.Debug()
	}
	ev.Str("kind", d.Kind.String()).
		Int("k", d.K).
		Int("l", d.L).
		Float64("denominator", d.Denominator).
		Msg("denominator too close to zero")
}
