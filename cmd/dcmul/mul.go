// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dcmul/karatsuba"
)

func newMulCmd(a *app) *cobra.Command {
	var (
		naive     bool
		threshold int
	)
	cmd := &cobra.Command{
		Use:   "mul A B",
		Short: "Multiply two non-negative decimal integers",
		Example: `  dcmul mul 12345678901234567890 98765432109876543210
  dcmul mul --threshold 4 1234 5678`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < 1 {
				return fmt.Errorf("--threshold must be >= 1, got %d", threshold)
			}
			a.log.Debug("multiplying decimals",
				zap.Int("len_a", len(args[0])),
				zap.Int("len_b", len(args[1])),
				zap.Bool("naive", naive),
				zap.Int("threshold", threshold))

			var (
				p   string
				err error
			)
			if naive {
				p, err = karatsuba.NaiveMultiplyDecimal(args[0], args[1])
			} else {
				p, err = karatsuba.MultiplyDecimal(args[0], args[1], karatsuba.WithThreshold(threshold))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&naive, "naive", false, "use the schoolbook kernel")
	cmd.Flags().IntVar(&threshold, "threshold", karatsuba.DefaultThreshold, "base-case length in digits")
	return cmd
}
