// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/internal/fault"
	"github.com/katalvlaran/lattice/internal/report"
	"github.com/katalvlaran/lattice/internal/vecparse"
	"github.com/katalvlaran/lattice/lattice"
)

func newReduceCmd(rt *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce [vector]...",
		Short: "Reduce a basis and write the shortest norm",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.fail(rt.reduce(cmd, args))
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (rt *app) reduce(cmd *cobra.Command, args []string) error {
	b, err := parseBasis(args)
	if err != nil {
		return err
	}

	opts := append(rt.cfg.Options(), lattice.WithLogger(rt.logger))
	res, err := lattice.Reduce(b, opts...)
	if err != nil {
		return rt.reduceFailure(err, b)
	}

	out := report.NewReduction(rt.runID, b, res)
	err = report.WriteFile(rt.cfg.Output, cmd.OutOrStdout(), func(w io.Writer) error {
		return report.WriteReduction(w, rt.cfg.Format, out)
	})
	if err != nil {
		return fault.Wrap(err, fault.CodeReportWriteFailure, "could not write result",
			fault.Field("output", rt.cfg.Output), fault.Field("format", rt.cfg.Format))
	}

	rt.logger.Debug().
		Str("output", rt.cfg.Output).
		Str("format", rt.cfg.Format).
		Float64("shortest_norm", res.ShortestNorm).
		Msg("result written")

	return nil
}

// reduceFailure codes a lattice.Reduce error and attaches the run context.
func (rt *app) reduceFailure(err error, b *lattice.Basis) error {
	code := fault.CodeReduceFailure
	if errors.Is(err, lattice.ErrIterationLimit) {
		code = fault.CodeReduceIterationLimit
	}

	return fault.Wrap(err, code, "reducing basis",
		fault.Field("max_iterations", rt.cfg.MaxIterations),
		fault.Field("vectors", b.Len()))
}

// parseBasis turns vector literals into a square basis.
func parseBasis(args []string) (*lattice.Basis, error) {
	if len(args) == 0 {
		return nil, fault.New(fault.CodeCLIUsageInvalid, usageLine)
	}

	rows, err := vecparse.Parse(args)
	if errors.Is(err, vecparse.ErrNoVectors) {
		return nil, fault.New(fault.CodeCLIUsageInvalid, usageLine)
	}
	if err != nil {
		return nil, fault.Wrap(err, fault.CodeCLIInputInvalid, "Invalid vector format", fault.Field("arguments", len(args)))
	}

	b, err := lattice.NewBasis(rows)
	if err != nil {
		return nil, fault.Wrap(err, fault.CodeCLIInputInvalid, "Invalid vector format", fault.Field("vectors", len(rows)))
	}

	return b, nil
}
