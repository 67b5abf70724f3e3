// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep entries small (0..9 by default) so overflow never interferes
//     unless a test asks for it.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/dcmul/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)
	return m
}

// RandDense fills an n×n matrix with integers in [lo, hi] from a seeded RNG.
func RandDense(t testing.TB, n int, lo, hi int64, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, lo+rng.Int63n(hi-lo+1)))
		}
	}
	return m
}

// CompareExact fails with a row diff when got differs from want.
func CompareExact(t testing.TB, want [][]int64, got *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, got.ToRows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}
