// SPDX-License-Identifier: MIT

// Package report renders reduction results.
//
// The text format is the bare shortest norm with fifteen fractional digits
// and a trailing newline. The yaml and json formats add the run id, the
// reduced basis and the engine counters.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lattice/lattice"
)

// Formats understood by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Stdout is the output path that selects the caller's writer instead of a file.
const Stdout = "-"

// ErrUnknownFormat is returned for a format outside text, yaml and json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Stats mirrors lattice.Stats with serialization tags.
type Stats struct {
	Iterations         int `yaml:"iterations" json:"iterations"`
	Swaps              int `yaml:"swaps" json:"swaps"`
	SizeReductions     int `yaml:"size_reductions" json:"size_reductions"`
	SkippedReductions  int `yaml:"skipped_reductions" json:"skipped_reductions"`
	SkippedProjections int `yaml:"skipped_projections" json:"skipped_projections"`
}

// Reduction is the outcome of one reduce run.
type Reduction struct {
	RunID        string      `yaml:"run_id" json:"run_id"`
	ShortestNorm float64     `yaml:"shortest_norm" json:"shortest_norm"`
	Basis        [][]float64 `yaml:"basis" json:"basis"`
	LLL          Stats       `yaml:"lll" json:"lll"`
	KZ           Stats       `yaml:"kz" json:"kz"`
}

// Quality mirrors lattice.Quality. Non-finite measures are left nil.
type Quality struct {
	ShortestNorm        float64  `yaml:"shortest_norm" json:"shortest_norm"`
	Volume              *float64 `yaml:"volume,omitempty" json:"volume,omitempty"`
	OrthogonalityDefect *float64 `yaml:"orthogonality_defect,omitempty" json:"orthogonality_defect,omitempty"`
	HermiteFactor       *float64 `yaml:"hermite_factor,omitempty" json:"hermite_factor,omitempty"`
	MaxCoefficient      float64  `yaml:"max_coefficient" json:"max_coefficient"`
	SizeReduced         bool     `yaml:"size_reduced" json:"size_reduced"`
	LLLReduced          bool     `yaml:"lll_reduced" json:"lll_reduced"`
}

// Check compares a basis before and after reduction.
type Check struct {
	RunID                string   `yaml:"run_id" json:"run_id"`
	Before               Quality  `yaml:"before" json:"before"`
	After                Quality  `yaml:"after" json:"after"`
	DeterminantBefore    *float64 `yaml:"determinant_before,omitempty" json:"determinant_before,omitempty"`
	DeterminantAfter     *float64 `yaml:"determinant_after,omitempty" json:"determinant_after,omitempty"`
	DeterminantPreserved bool     `yaml:"determinant_preserved" json:"determinant_preserved"`
}

// NewReduction captures the reduced basis b and its counters.
func NewReduction(id uuid.UUID, b *lattice.Basis, res lattice.Result) Reduction {
	return Reduction{
		RunID:        id.String(),
		ShortestNorm: res.ShortestNorm,
		Basis:        b.Rows(),
		LLL:          fromStats(res.LLL),
		KZ:           fromStats(res.KZ),
	}
}

// NewQuality converts q, dropping infinite measures.
func NewQuality(q lattice.Quality) Quality {
	return Quality{
		ShortestNorm:        q.ShortestNorm,
		Volume:              Finite(q.Volume),
		OrthogonalityDefect: Finite(q.OrthogonalityDefect),
		HermiteFactor:       Finite(q.HermiteFactor),
		MaxCoefficient:      q.MaxCoefficient,
		SizeReduced:         q.SizeReduced,
		LLLReduced:          q.LLLReduced,
	}
}

func fromStats(s lattice.Stats) Stats {
	return Stats(s)
}

// Finite returns &x, or nil when x is NaN or infinite; JSON cannot carry
// non-finite numbers.
func Finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}

// WriteReduction renders r to w. The text format prints only the norm.
func WriteReduction(w io.Writer, format string, r Reduction) error {
	if format == FormatText {
		_, err := fmt.Fprintf(w, "%.15f\n", r.ShortestNorm)

		return err
	}

	return encode(w, format, r)
}

// WriteCheck renders c to w. The text format is one "key: value" per line.
func WriteCheck(w io.Writer, format string, c Check) error {
	if format != FormatText {
		return encode(w, format, c)
	}

	lines := []struct {
		key string
		val any
	}{
		{"shortest_norm", fmt.Sprintf("%.15f -> %.15f", c.Before.ShortestNorm, c.After.ShortestNorm)},
		{"orthogonality_defect", fmt.Sprintf("%s -> %s", ptr(c.Before.OrthogonalityDefect), ptr(c.After.OrthogonalityDefect))},
		{"hermite_factor", fmt.Sprintf("%s -> %s", ptr(c.Before.HermiteFactor), ptr(c.After.HermiteFactor))},
		{"max_coefficient", fmt.Sprintf("%g -> %g", c.Before.MaxCoefficient, c.After.MaxCoefficient)},
		{"size_reduced", fmt.Sprintf("%t -> %t", c.Before.SizeReduced, c.After.SizeReduced)},
		{"lll_reduced", fmt.Sprintf("%t -> %t", c.Before.LLLReduced, c.After.LLLReduced)},
		{"volume", fmt.Sprintf("%s -> %s", ptr(c.Before.Volume), ptr(c.After.Volume))},
		{"determinant", fmt.Sprintf("%s -> %s", ptr(c.DeterminantBefore), ptr(c.DeterminantAfter))},
		{"determinant_preserved", c.DeterminantPreserved},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %v\n", l.key, l.val); err != nil {
			return err
		}
	}

	return nil
}

func ptr(x *float64) string {
	if x == nil {
		return "inf"
	}

	return fmt.Sprintf("%.12g", *x)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// WriteFile renders into a temporary file next to path and renames it over
// path once render and close succeed, so a failed render leaves any previous
// file untouched. When path is Stdout, render writes to fallback instead.
func WriteFile(path string, fallback io.Writer, render func(io.Writer) error) (err error) {
	if path == Stdout {
		return render(fallback)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = render(f); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
