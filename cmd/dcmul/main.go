// SPDX-License-Identifier: MIT

// Command dcmul multiplies decimal integers with Karatsuba and square integer
// matrices with Strassen, and benchmarks both against their naive kernels.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dcmul/internal/config"
)

// app carries the global flags and the logger shared by all subcommands.
type app struct {
	verbose   bool
	logFormat string
	log       *zap.Logger

	// newLogger builds the logger; tests replace it with a no-op.
	newLogger func(level zapcore.Level, format string) (*zap.Logger, error)
}

func newApp() *app {
	return &app{log: zap.NewNop(), newLogger: buildLogger}
}

// buildLogger returns a production (JSON) or development (console) logger
// at the given level, writing to stderr.
func buildLogger(level zapcore.Level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case config.FormatJSON:
		cfg = zap.NewProductionConfig()
	case config.FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// setLogger replaces the current logger, flushing the old one.
func (a *app) setLogger(level zapcore.Level, format string) error {
	l, err := a.newLogger(level, format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	_ = a.log.Sync()
	a.log = l
	return nil
}

func (a *app) level() zapcore.Level {
	if a.verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dcmul",
		Short: "Divide-and-conquer multiplication: Karatsuba for decimals, Strassen for matrices",
		Long: `dcmul multiplies arbitrarily long non-negative decimal integers with the
Karatsuba algorithm and square int64 matrices with the Strassen algorithm.

Every product is exact. The bench commands time both engines against the
schoolbook kernels on seeded random inputs and verify that results agree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setLogger(a.level(), a.logFormat)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", config.FormatJSON, "log encoding: json or console")

	root.AddCommand(newMulCmd(a), newMatmulCmd(a), newBenchCmd(a))
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
