package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dcmul/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Quadrants checks the A11/A12/A21/A22 layout on a 4×4 grid.
func TestSplit_Quadrants(t *testing.T) {
	a := MustFromRows(t, [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	a11, a12, a21, a22, err := matrix.Split(a)
	require.NoError(t, err)
	CompareExact(t, [][]int64{{1, 2}, {5, 6}}, a11)
	CompareExact(t, [][]int64{{3, 4}, {7, 8}}, a12)
	CompareExact(t, [][]int64{{9, 10}, {13, 14}}, a21)
	CompareExact(t, [][]int64{{11, 12}, {15, 16}}, a22)

	// Quadrants are owned copies.
	require.NoError(t, a11.Set(0, 0, 100))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

// TestSplitMerge_RoundTrip verifies Merge(Split(a)) == a for random grids.
func TestSplitMerge_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 2, 6, 16, 64} {
		a := RandDense(t, n, -9, 9, int64(n)+1)
		a11, a12, a21, a22, err := matrix.Split(a)
		require.NoError(t, err)
		back, err := matrix.Merge(a11, a12, a21, a22)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(a, back), "n=%d", n)
	}
}

// TestSplit_Errors rejects nil and odd sides.
func TestSplit_Errors(t *testing.T) {
	_, _, _, _, err := matrix.Split(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	odd := RandDense(t, 3, 0, 9, 1)
	_, _, _, _, err = matrix.Split(odd)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestMerge_Errors rejects nil and unequal quadrants.
func TestMerge_Errors(t *testing.T) {
	q := RandDense(t, 2, 0, 9, 1)
	r := RandDense(t, 3, 0, 9, 2)

	_, err := matrix.Merge(q, q, q, r)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Merge(q, nil, q, q)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
