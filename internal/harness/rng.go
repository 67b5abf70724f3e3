// SPDX-License-Identifier: MIT

// Package harness - deterministic random inputs for the benchmark sweeps.
//
// Goals:
//   - Determinism: same seed ⇒ identical operands across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: each size of a sweep draws from its own derived stream, so
//     adding a size never changes the operands of another.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one stream per worker.
package harness

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dcmul/digits"
	"github.com/katalvlaran/dcmul/matrix"
)

// ErrValueRange is returned by RandomMatrix for an empty or too wide entry range.
var ErrValueRange = errors.New("harness: invalid value range")

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a SplitMix64
// finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the stream for one sweep entry of the given seed.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// RandomDigits returns an n-digit number whose most significant digit is
// never zero. n < 1 yields digits.Zero(). A nil rng uses the default seed.
//
// Complexity: O(n).
func RandomDigits(rng *rand.Rand, n int) digits.Vector {
	if n < 1 {
		return digits.Zero()
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	v := make(digits.Vector, n)
	for i := 0; i < n-1; i++ {
		v[i] = uint8(rng.Intn(digits.Base))
	}
	v[n-1] = uint8(1 + rng.Intn(digits.Base-1))
	return v
}

// RandomMatrix returns an n×n matrix with entries uniform in [lo, hi].
//
// Errors:
//   - matrix.ErrBadShape (n < 0).
//   - ErrValueRange (lo > hi, or the range holds more than MaxInt64 values).
//
// Complexity: O(n²).
func RandomMatrix(rng *rand.Rand, n int, lo, hi int64, opts ...matrix.Option) (*matrix.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("RandomMatrix: side %d: %w", n, matrix.ErrBadShape)
	}
	span := hi - lo + 1
	if hi < lo || span <= 0 {
		return nil, fmt.Errorf("RandomMatrix: [%d, %d]: %w", lo, hi, ErrValueRange)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = lo + rng.Int63n(span)
		}
	}
	return matrix.NewFromRows(rows, opts...)
}
