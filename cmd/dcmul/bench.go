// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dcmul/internal/config"
	"github.com/katalvlaran/dcmul/internal/harness"
)

type runFunc func(ctx context.Context, cfg *config.Config, log *zap.Logger) (*harness.Report, error)

func newBenchCmd(a *app) *cobra.Command {
	var (
		cfgPath string
		seed    int64
		trials  int
	)
	bench := &cobra.Command{
		Use:   "bench",
		Short: "Time the divide-and-conquer engines against the naive kernels",
	}
	bench.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML sweep configuration (defaults when empty)")
	bench.PersistentFlags().Int64Var(&seed, "seed", 0, "override the configured seed")
	bench.PersistentFlags().IntVar(&trials, "trials", 0, "override the configured trials per size")

	sub := func(use, short string, run runFunc) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.DefaultConfig()
				if cfgPath != "" {
					var err error
					if cfg, err = config.Load(cfgPath); err != nil {
						return err
					}
					if err := a.applyLogging(cmd, cfg.Logging); err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("seed") {
					cfg.Seed = seed
				}
				if cmd.Flags().Changed("trials") {
					cfg.Trials = trials
				}

				rep, err := run(cmd.Context(), cfg, a.log)
				if rep != nil {
					fmt.Fprint(cmd.OutOrStdout(), harness.Render(rep))
				}
				if errors.Is(err, harness.ErrMismatch) {
					a.log.Error("verification failed", zap.String("run_id", rep.RunID))
				}
				return err
			},
		}
	}
	bench.AddCommand(
		sub("karatsuba", "Sweep decimal operand lengths", harness.RunKaratsuba),
		sub("strassen", "Sweep matrix sides", harness.RunStrassen),
	)
	return bench
}

// applyLogging rebuilds the logger from a configuration file unless the
// command line already chose the level or format.
func (a *app) applyLogging(cmd *cobra.Command, lc config.LoggingConfig) error {
	if cmd.Flags().Changed("verbose") || cmd.Flags().Changed("log-format") {
		return nil
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return a.setLogger(level, lc.Format)
}
