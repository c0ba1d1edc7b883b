// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/internal/fault"
	"github.com/katalvlaran/lattice/internal/report"
	"github.com/katalvlaran/lattice/lattice"
	"github.com/katalvlaran/lattice/matrix"
)

// detTolerance is the relative slack allowed between |det| before and after.
const detTolerance = 1e-9

func newCheckCmd(rt *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [vector]...",
		Short: "Report basis quality before and after reduction",
		Long: "check reduces a copy of the basis and prints quality measures for\n" +
			"both, along with |det| to confirm the lattice is unchanged.\n" +
			"The report goes to standard output in the configured format.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.fail(rt.check(cmd, args))
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (rt *app) check(cmd *cobra.Command, args []string) error {
	b, err := parseBasis(args)
	if err != nil {
		return err
	}
	opts := append(rt.cfg.Options(), lattice.WithLogger(rt.logger))

	before, detBefore, err := measure(b, opts)
	if err != nil {
		return err
	}

	work := b.Clone()
	if _, err = lattice.Reduce(work, opts...); err != nil {
		return rt.reduceFailure(err, work)
	}

	after, detAfter, err := measure(work, opts)
	if err != nil {
		return err
	}

	c := report.Check{
		RunID:                rt.runID.String(),
		Before:               report.NewQuality(before),
		After:                report.NewQuality(after),
		DeterminantBefore:    report.Finite(detBefore),
		DeterminantAfter:     report.Finite(detAfter),
		DeterminantPreserved: math.Abs(detBefore-detAfter) <= detTolerance*math.Max(1, detBefore),
	}
	if !c.DeterminantPreserved {
		rt.logger.Warn().Float64("before", detBefore).Float64("after", detAfter).Msg("determinant changed")
	}

	if err = report.WriteCheck(cmd.OutOrStdout(), rt.cfg.Format, c); err != nil {
		return fault.Wrapf(err, fault.CodeReportWriteFailure, "writing check report")
	}

	return nil
}

// measure returns the quality of b and |det| of its matrix form.
func measure(b *lattice.Basis, opts []lattice.Option) (lattice.Quality, float64, error) {
	q, err := lattice.Analyze(b, opts...)
	if err != nil {
		return lattice.Quality{}, 0, fault.Wrapf(err, fault.CodeReduceFailure, "analyzing basis")
	}
	m, err := b.ToMatrix()
	if err != nil {
		return lattice.Quality{}, 0, fault.Wrapf(err, fault.CodeReduceFailure, "converting basis")
	}
	det, err := matrix.Det(m)
	if err != nil {
		return lattice.Quality{}, 0, fault.Wrapf(err, fault.CodeReduceFailure, "computing determinant")
	}

	return q, math.Abs(det), nil
}
