package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcmul/internal/config"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1000, 2000, 4000, 8000, 16000}, cfg.Karatsuba.Lengths)
	assert.Equal(t, []int{128, 256, 512, 1024}, cfg.Strassen.Sizes)
	assert.Equal(t, 64, cfg.Karatsuba.Threshold)
	assert.Equal(t, 64, cfg.Strassen.Threshold)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dcmul.yaml")
	want := config.DefaultConfig()
	want.Seed = 42
	want.Trials = 7
	want.Strassen.ParallelDepth = 2
	want.Logging.Format = config.FormatConsole

	require.NoError(t, want.Save(path))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 5\nkaratsuba:\n  lengths: [10, 20]\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Trials)
	assert.Equal(t, []int{10, 20}, cfg.Karatsuba.Lengths)
	assert.Equal(t, 64, cfg.Karatsuba.Threshold)
	assert.Equal(t, []int{128, 256, 512, 1024}, cfg.Strassen.Sizes)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("trials: [oops"), 0o644))
	_, err := config.Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("trials: 0\n"), 0o644))
	_, err = config.Load(invalid)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_WideValueRanges(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strassen.MinValue, cfg.Strassen.MaxValue = 1, math.MaxInt64
	require.NoError(t, cfg.Validate(), "MaxInt64 values still fit")

	cfg.Strassen.MinValue, cfg.Strassen.MaxValue = -1<<62+1, 1<<62-1
	require.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"trials", func(c *config.Config) { c.Trials = 0 }},
		{"karatsuba threshold", func(c *config.Config) { c.Karatsuba.Threshold = 0 }},
		{"strassen threshold", func(c *config.Config) { c.Strassen.Threshold = -1 }},
		{"parallel depth", func(c *config.Config) { c.Strassen.ParallelDepth = -1 }},
		{"value range", func(c *config.Config) { c.Strassen.MinValue, c.Strassen.MaxValue = 5, 4 }},
		{"value span max", func(c *config.Config) { c.Strassen.MinValue, c.Strassen.MaxValue = 0, math.MaxInt64 }},
		{"value span wraps", func(c *config.Config) { c.Strassen.MinValue, c.Strassen.MaxValue = -10, math.MaxInt64 - 5 }},
		{"value span full", func(c *config.Config) { c.Strassen.MinValue, c.Strassen.MaxValue = math.MinInt64, math.MaxInt64 }},
		{"length", func(c *config.Config) { c.Karatsuba.Lengths = []int{10, 0} }},
		{"size", func(c *config.Config) { c.Strassen.Sizes = []int{-3} }},
		{"level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
