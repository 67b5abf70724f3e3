// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dcmul/matrix"
	"github.com/katalvlaran/dcmul/strassen"
)

// matrixPair is the YAML document read by matmul: {a: [[...]], b: [[...]]}.
type matrixPair struct {
	A [][]int64 `yaml:"a"`
	B [][]int64 `yaml:"b"`
}

// loadPair reads and decodes a matrixPair into two Dense operands.
func loadPair(path string) (*matrix.Dense, *matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var p matrixPair
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	a, err := matrix.NewFromRows(p.A)
	if err != nil {
		return nil, nil, fmt.Errorf("matrix a: %w", err)
	}
	b, err := matrix.NewFromRows(p.B)
	if err != nil {
		return nil, nil, fmt.Errorf("matrix b: %w", err)
	}
	return a, b, nil
}

func newMatmulCmd(a *app) *cobra.Command {
	var (
		file          string
		naive         bool
		threshold     int
		parallelDepth int
	)
	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Multiply two square matrices read from a YAML file",
		Long: `Reads a YAML document of the form

  a: [[1, 2], [3, 4]]
  b: [[5, 6], [7, 8]]

and prints the product one row per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < 1 {
				return fmt.Errorf("--threshold must be >= 1, got %d", threshold)
			}
			if parallelDepth < 0 {
				return fmt.Errorf("--parallel-depth must be >= 0, got %d", parallelDepth)
			}
			x, y, err := loadPair(file)
			if err != nil {
				return err
			}
			a.log.Debug("multiplying matrices",
				zap.String("file", file),
				zap.Int("n", x.Size()),
				zap.Bool("naive", naive),
				zap.Int("threshold", threshold),
				zap.Int("parallel_depth", parallelDepth))

			var c *matrix.Dense
			if naive {
				c, err = matrix.Mul(x, y)
			} else {
				c, err = strassen.MultiplyContext(cmd.Context(), x, y,
					strassen.WithThreshold(threshold),
					strassen.WithParallelDepth(parallelDepth))
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding matrices a and b")
	cmd.Flags().BoolVar(&naive, "naive", false, "use the schoolbook kernel")
	cmd.Flags().IntVar(&threshold, "threshold", strassen.DefaultThreshold, "base-case side length")
	cmd.Flags().IntVar(&parallelDepth, "parallel-depth", strassen.DefaultParallelDepth, "recursion levels that fan out to goroutines")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
