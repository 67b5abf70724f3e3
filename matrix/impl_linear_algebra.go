// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise and naive product kernels over
// square Dense matrices. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches and overflow.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Loops are deterministic: flat 0..n²-1 for elementwise ops, i→k→j for Mul.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sub=false) or out = a - b (sub=true).
// Inputs must have identical sides. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate the result.
//   - Stage 2: single flat loop; checked or wrapping arithmetic per policy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (with the flat offset).
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new result.
func addSub(a, b *Dense, sub bool, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDenseLike(a.n, a, b)

	if !res.checkOverflow {
		if sub {
			for idx := range res.data {
				res.data[idx] = a.data[idx] - b.data[idx]
			}
		} else {
			for idx := range res.data {
				res.data[idx] = a.data[idx] + b.data[idx]
			}
		}
		return res, nil
	}

	var (
		v        int64
		overflow bool
	)
	for idx := range res.data {
		if sub {
			v, overflow = subInt64(a.data[idx], b.data[idx])
		} else {
			v, overflow = addInt64(a.data[idx], b.data[idx])
		}
		if overflow {
			return nil, matrixErrorf(opTag, denseErrorf(opTag, idx/a.n, idx%a.n, ErrOverflow))
		}
		res.data[idx] = v
	}
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (side mismatch),
//     ErrOverflow (checked policy only).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense.
// Same contract as Add.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, true, opSub) }

// Mul computes the naive product C = A·B, C[i][j] = Σ_k A[i][k]·B[k][j].
//
// Implementation:
//   - Stage 1: validate non-nil operands of equal side.
//   - Stage 2: i→k→j triple loop accumulating into the result row; zero
//     entries of A skip their whole k-row.
//
// Behavior highlights:
//   - 64-bit accumulation for every multiply-accumulate.
//   - Under the overflow policy each product and each partial sum is checked.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - This is the reference against which Strassen is verified; keep it simple.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := a.n
	res := newDenseLike(n, a, b)

	var (
		i, j, k          int
		rowA, rowB, rowR int
		av, p, s         int64
		mulOvf, addOvf   bool
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		rowR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * n
			if !res.checkOverflow {
				for j = 0; j < n; j++ {
					res.data[rowR+j] += av * b.data[rowB+j]
				}
				continue
			}
			for j = 0; j < n; j++ {
				p, mulOvf = mulInt64(av, b.data[rowB+j])
				s, addOvf = addInt64(res.data[rowR+j], p)
				if mulOvf || addOvf {
					return nil, matrixErrorf(opMul, denseErrorf(opMul, i, j, ErrOverflow))
				}
				res.data[rowR+j] = s
			}
		}
	}
	return res, nil
}
