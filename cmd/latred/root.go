// SPDX-License-Identifier: MIT

package main

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lattice/internal/config"
	"github.com/katalvlaran/lattice/internal/fault"
	"github.com/katalvlaran/lattice/internal/logging"
)

const usageLine = "usage: latred [flags] [vector1] [vector2] ..."

// app is the per-invocation state prepared before any subcommand runs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	runID  uuid.UUID
}

// NewRootCmd creates the root latred command. Invoked with vectors and no
// subcommand it behaves like "latred reduce".
func NewRootCmd() *cobra.Command {
	rt := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "latred [vector]...",
		Short: "latred reduces a lattice basis with LLL and a KZ-style pass",
		Long: "latred reads n vectors of n components each, e.g. [1 0] [1 2],\n" +
			"reduces them and writes the shortest basis norm.\n\n" +
			"Flags must precede the first vector so that negative components\n" +
			"are not mistaken for flags.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.fail(rt.reduce(cmd, args))
		},
	}
	root.Flags().SetInterspersed(false)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fault.Wrapf(err, fault.CodeCLIUsageInvalid, "%s", usageLine)
	})

	root.PersistentFlags().StringP("config", "c", "", "path to config file (default ./latred.yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newReduceCmd(rt),
		newCheckCmd(rt),
		newVersionCmd(),
	)

	return root
}

// init resolves configuration with flag > env > file > default precedence
// and builds the logger.
func (rt *app) init(cmd *cobra.Command) error {
	v := viper.New()
	config.SetDefaults(v)
	config.SetupEnv(v)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fault.Wrapf(err, fault.CodeConfigValidateInvalidValue, "building logger")
	}

	rt.cfg = cfg
	rt.logger, rt.runID = logging.WithRunID(logger)

	return nil
}

// fail logs err with its code and structured fields under the run id, then
// returns it unchanged. Bad user input logs at Warn, everything else at Error.
func (rt *app) fail(err error) error {
	if err == nil {
		return nil
	}

	ev := rt.logger.Error()
	if fault.IsInvalidInput(err) {
		ev = rt.logger.Warn()
	}
	ev.Err(err).
		Str("code", string(fault.CodeOf(err))).
		Fields(fault.FieldsOf(err)).
		Msg("run failed")

	return err
}
