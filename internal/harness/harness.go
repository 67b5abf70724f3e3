// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/dcmul/digits"
	"github.com/katalvlaran/dcmul/internal/config"
	"github.com/katalvlaran/dcmul/karatsuba"
	"github.com/katalvlaran/dcmul/matrix"
	"github.com/katalvlaran/dcmul/strassen"
)

// ErrMismatch reports that the divide-and-conquer product differs from the
// naive reference.
var ErrMismatch = errors.New("harness: fast and naive products differ")

// Kind names the engine a Report was produced for.
type Kind string

const (
	KindKaratsuba Kind = "karatsuba"
	KindStrassen  Kind = "strassen"
)

// Row is the measurement for one size of a sweep. Every trial multiplies a
// fresh operand pair drawn from the size's stream.
type Row struct {
	Size       int           // digits (karatsuba) or side (strassen)
	Naive      time.Duration // mean naive trial
	Fast       time.Duration // mean divide-and-conquer trial
	NaiveMin   time.Duration // fastest naive trial
	FastMin    time.Duration // fastest divide-and-conquer trial
	Splits     int64         // recursive splits of the last fast multiplication
	Mismatches int           // trials whose fast result differed from naive
	Agree      bool          // Mismatches == 0
}

// Speedup is Naive/Fast, or 0 when Fast was not measurable.
func (r Row) Speedup() float64 {
	if r.Fast <= 0 {
		return 0
	}
	return float64(r.Naive) / float64(r.Fast)
}

// Report is the outcome of one sweep.
type Report struct {
	RunID     string
	Kind      Kind
	Seed      int64
	Trials    int
	Threshold int
	Rows      []Row
}

// tally accumulates the trials of one size into a Row.
type tally struct {
	row    Row
	trials int
	naive  time.Duration // sum
	fast   time.Duration // sum
}

func (t *tally) add(naive, fast time.Duration, agree bool) {
	if t.trials == 0 || naive < t.row.NaiveMin {
		t.row.NaiveMin = naive
	}
	if t.trials == 0 || fast < t.row.FastMin {
		t.row.FastMin = fast
	}
	t.naive += naive
	t.fast += fast
	t.trials++
	if !agree {
		t.row.Mismatches++
	}
}

func (t *tally) done(splits int64) Row {
	r := t.row
	if t.trials > 0 {
		r.Naive = t.naive / time.Duration(t.trials)
		r.Fast = t.fast / time.Duration(t.trials)
	}
	r.Splits = splits
	r.Agree = r.Mismatches == 0
	return r
}

// RunKaratsuba sweeps cfg.Karatsuba.Lengths, timing karatsuba.Multiply against
// digits.NaiveMul. Each of cfg.Trials trials draws new random operands and is
// verified; a disagreement is logged and returned as ErrMismatch after the
// sweep finishes.
//
// ctx is checked between trials.
func RunKaratsuba(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rep := newReport(KindKaratsuba, cfg, cfg.Karatsuba.Threshold)
	log = log.With(zap.String("run_id", rep.RunID), zap.String("kind", string(rep.Kind)))
	log.Info("sweep started", zap.Ints("lengths", cfg.Karatsuba.Lengths), zap.Int("trials", cfg.Trials))

	var mismatch bool
	for i, n := range cfg.Karatsuba.Lengths {
		rng := streamRNG(cfg.Seed, uint64(i))

		var splits atomic.Int64
		opts := []karatsuba.Option{
			karatsuba.WithThreshold(cfg.Karatsuba.Threshold),
			karatsuba.WithSplitHook(func(int, int) { splits.Add(1) }),
		}

		t := tally{row: Row{Size: n}}
		for trial := 0; trial < cfg.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			a, b := RandomDigits(rng, n), RandomDigits(rng, n)

			start := time.Now()
			want := digits.NaiveMul(a, b)
			naive := time.Since(start)

			splits.Store(0)
			start = time.Now()
			got := karatsuba.Multiply(a, b, opts...)
			fast := time.Since(start)

			agree := digits.Cmp(want, got) == 0
			t.add(naive, fast, agree)
			logTrial(log, n, trial, naive, fast, agree)
		}

		row := t.done(splits.Load())
		rep.Rows = append(rep.Rows, row)
		logRow(log, row)
		mismatch = mismatch || !row.Agree
	}
	if mismatch {
		return rep, ErrMismatch
	}
	return rep, nil
}

// RunStrassen sweeps cfg.Strassen.Sizes, timing strassen.MultiplyContext
// against matrix.Mul on random matrices with entries in
// [cfg.Strassen.MinValue, cfg.Strassen.MaxValue], new matrices per trial.
func RunStrassen(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc := cfg.Strassen
	rep := newReport(KindStrassen, cfg, sc.Threshold)
	log = log.With(zap.String("run_id", rep.RunID), zap.String("kind", string(rep.Kind)))
	log.Info("sweep started",
		zap.Ints("sizes", sc.Sizes),
		zap.Int("trials", cfg.Trials),
		zap.Int("parallel_depth", sc.ParallelDepth))

	var mismatch bool
	for i, n := range sc.Sizes {
		rng := streamRNG(cfg.Seed, uint64(i))

		var splits atomic.Int64
		opts := []strassen.Option{
			strassen.WithThreshold(sc.Threshold),
			strassen.WithParallelDepth(sc.ParallelDepth),
			strassen.WithSplitHook(func(int, int) { splits.Add(1) }),
		}

		t := tally{row: Row{Size: n}}
		for trial := 0; trial < cfg.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			a, err := RandomMatrix(rng, n, sc.MinValue, sc.MaxValue)
			if err != nil {
				return nil, fmt.Errorf("RunStrassen: size %d: %w", n, err)
			}
			b, err := RandomMatrix(rng, n, sc.MinValue, sc.MaxValue)
			if err != nil {
				return nil, fmt.Errorf("RunStrassen: size %d: %w", n, err)
			}

			start := time.Now()
			want, err := matrix.Mul(a, b)
			if err != nil {
				return nil, fmt.Errorf("RunStrassen: size %d: %w", n, err)
			}
			naive := time.Since(start)

			splits.Store(0)
			start = time.Now()
			got, err := strassen.MultiplyContext(ctx, a, b, opts...)
			if err != nil {
				return nil, fmt.Errorf("RunStrassen: size %d: %w", n, err)
			}
			fast := time.Since(start)

			agree := matrix.Equal(want, got)
			t.add(naive, fast, agree)
			logTrial(log, n, trial, naive, fast, agree)
		}

		row := t.done(splits.Load())
		rep.Rows = append(rep.Rows, row)
		logRow(log, row)
		mismatch = mismatch || !row.Agree
	}
	if mismatch {
		return rep, ErrMismatch
	}
	return rep, nil
}

func newReport(kind Kind, cfg *config.Config, threshold int) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Kind:      kind,
		Seed:      cfg.Seed,
		Trials:    cfg.Trials,
		Threshold: threshold,
	}
}

func logTrial(log *zap.Logger, size, trial int, naive, fast time.Duration, agree bool) {
	log.Debug("trial measured",
		zap.Int("size", size),
		zap.Int("trial", trial),
		zap.Duration("naive", naive),
		zap.Duration("fast", fast),
		zap.Bool("agree", agree))
}

func logRow(log *zap.Logger, r Row) {
	fields := []zap.Field{
		zap.Int("size", r.Size),
		zap.Duration("naive_mean", r.Naive),
		zap.Duration("fast_mean", r.Fast),
		zap.Duration("naive_min", r.NaiveMin),
		zap.Duration("fast_min", r.FastMin),
		zap.Int("mismatches", r.Mismatches),
		zap.Float64("speedup", r.Speedup()),
		zap.Int64("splits", r.Splits),
	}
	if !r.Agree {
		log.Error("products differ", fields...)
		return
	}
	log.Debug("size measured", fields...)
}
