// SPDX-License-Identifier: MIT

// Package config holds the benchmark sweep and logging configuration of the
// dcmul tool. Files are YAML; a missing file yields DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dcmul/karatsuba"
	"github.com/katalvlaran/dcmul/strassen"
)

// ErrInvalidConfig is returned (wrapped) by Validate for rejected values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats accepted by LoggingConfig.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config is the root of a dcmul configuration file.
type Config struct {
	// Seed drives every random input; 0 selects the harness default seed.
	Seed int64 `yaml:"seed"`
	// Trials is the number of timed repetitions per size.
	Trials int `yaml:"trials"`

	Karatsuba KaratsubaConfig `yaml:"karatsuba"`
	Strassen  StrassenConfig  `yaml:"strassen"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// KaratsubaConfig configures the decimal multiplication sweep.
type KaratsubaConfig struct {
	Threshold int   `yaml:"threshold"`
	Lengths   []int `yaml:"lengths"` // operand lengths in digits
}

// StrassenConfig configures the matrix multiplication sweep.
type StrassenConfig struct {
	Threshold     int   `yaml:"threshold"`
	ParallelDepth int   `yaml:"parallel_depth"`
	Sizes         []int `yaml:"sizes"`     // matrix sides
	MinValue      int64 `yaml:"min_value"` // inclusive bound of random entries
	MaxValue      int64 `yaml:"max_value"` // inclusive bound of random entries
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// DefaultConfig returns the sweep used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Seed:   1,
		Trials: 3,
		Karatsuba: KaratsubaConfig{
			Threshold: karatsuba.DefaultThreshold,
			Lengths:   []int{1000, 2000, 4000, 8000, 16000},
		},
		Strassen: StrassenConfig{
			Threshold:     strassen.DefaultThreshold,
			ParallelDepth: strassen.DefaultParallelDepth,
			Sizes:         []int{128, 256, 512, 1024},
			MinValue:      0,
			MaxValue:      9,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatJSON,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as YAML, creating the parent directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// validLevels lists the zap level names accepted in LoggingConfig.Level.
var validLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first rejected value wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Trials < 1:
		return invalidf("trials must be >= 1, got %d", c.Trials)
	case c.Karatsuba.Threshold < 1:
		return invalidf("karatsuba.threshold must be >= 1, got %d", c.Karatsuba.Threshold)
	case c.Strassen.Threshold < 1:
		return invalidf("strassen.threshold must be >= 1, got %d", c.Strassen.Threshold)
	case c.Strassen.ParallelDepth < 0:
		return invalidf("strassen.parallel_depth must be >= 0, got %d", c.Strassen.ParallelDepth)
	case c.Strassen.MinValue > c.Strassen.MaxValue:
		return invalidf("strassen.min_value %d exceeds max_value %d", c.Strassen.MinValue, c.Strassen.MaxValue)
	case !spanFits(c.Strassen.MinValue, c.Strassen.MaxValue):
		return invalidf("strassen value range [%d, %d] is wider than %d values",
			c.Strassen.MinValue, c.Strassen.MaxValue, int64(math.MaxInt64))
	}
	for _, l := range c.Karatsuba.Lengths {
		if l < 1 {
			return invalidf("karatsuba.lengths: %d is not a positive length", l)
		}
	}
	for _, n := range c.Strassen.Sizes {
		if n < 1 {
			return invalidf("strassen.sizes: %d is not a positive side", n)
		}
	}

	validLevel := false
	for _, l := range validLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return invalidf("logging.level %q (valid: %v)", c.Logging.Level, validLevels)
	}
	if c.Logging.Format != FormatJSON && c.Logging.Format != FormatConsole {
		return invalidf("logging.format %q (valid: %s, %s)", c.Logging.Format, FormatJSON, FormatConsole)
	}
	return nil
}

// spanFits reports whether the inclusive range [lo, hi], lo <= hi, holds at
// most MaxInt64 values, i.e. hi-lo+1 is a positive int64.
func spanFits(lo, hi int64) bool {
	d := hi - lo
	return d >= 0 && d < math.MaxInt64
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
