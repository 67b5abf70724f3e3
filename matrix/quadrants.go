// SPDX-License-Identifier: MIT

// Package matrix - quadrant bookkeeping for block-recursive algorithms.
//
// Layout:
//
//	┌─────┬─────┐
//	│ A11 │ A12 │   rows 0..h-1
//	├─────┼─────┤
//	│ A21 │ A22 │   rows h..n-1
//	└─────┴─────┘
//	 cols   cols
//	0..h-1 h..n-1
//
// Split and Merge copy whole row segments with copy(), so both run in O(n²)
// with four allocations each.

package matrix

const (
	opSplit = "Split"
	opMerge = "Merge"
)

// Split partitions an n×n matrix (n even) into four (n/2)×(n/2) quadrants:
// top-left, top-right, bottom-left, bottom-right. The quadrants are
// independently owned copies and inherit a's policy.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (odd side).
func Split(a *Dense) (a11, a12, a21, a22 *Dense, err error) {
	if err = ValidateNotNil(a); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opSplit, err)
	}
	if a.n%2 != 0 {
		return nil, nil, nil, nil, matrixErrorf(opSplit, ErrBadShape)
	}
	h := a.n / 2
	a11, a12 = newDenseLike(h, a), newDenseLike(h, a)
	a21, a22 = newDenseLike(h, a), newDenseLike(h, a)

	var top, bottom, dst int
	for i := 0; i < h; i++ {
		top = i * a.n          // row i of a
		bottom = (i + h) * a.n // row i+h of a
		dst = i * h
		copy(a11.data[dst:dst+h], a.data[top:top+h])
		copy(a12.data[dst:dst+h], a.data[top+h:top+a.n])
		copy(a21.data[dst:dst+h], a.data[bottom:bottom+h])
		copy(a22.data[dst:dst+h], a.data[bottom+h:bottom+a.n])
	}
	return a11, a12, a21, a22, nil
}

// Merge is the inverse of Split: it assembles a (2h)×(2h) matrix from four
// h×h quadrants. The result's policy is the union of the quadrants' policies.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (quadrants of different sides).
func Merge(a11, a12, a21, a22 *Dense) (*Dense, error) {
	for _, q := range [...]*Dense{a11, a12, a21, a22} {
		if err := ValidateNotNil(q); err != nil {
			return nil, matrixErrorf(opMerge, err)
		}
		if err := ValidateSameShape(a11, q); err != nil {
			return nil, matrixErrorf(opMerge, err)
		}
	}
	h := a11.n
	n := 2 * h
	out := newDenseLike(n, a11, a12, a21, a22)

	var top, bottom, src int
	for i := 0; i < h; i++ {
		top = i * n
		bottom = (i + h) * n
		src = i * h
		copy(out.data[top:top+h], a11.data[src:src+h])
		copy(out.data[top+h:top+n], a12.data[src:src+h])
		copy(out.data[bottom:bottom+h], a21.data[src:src+h])
		copy(out.data[bottom+h:bottom+n], a22.data[src:src+h])
	}
	return out, nil
}
