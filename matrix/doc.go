// SPDX-License-Identifier: MIT

// Package matrix provides dense square integer matrices and the algebra the
// Strassen engine is built from.
//
// The matrix package provides:
//
//   - Dense: an n×n row-major grid of int64 over a flat slice, n ≥ 0.
//   - Elementwise Add/Sub and the naive O(n³) Mul reference.
//   - Split/Merge into and from the four quadrants A11, A12, A21, A22.
//   - Pad/Truncate to and from the next power-of-two side length.
//   - Equal, the verification helper used by harnesses and tests.
//
// Every operation allocates its result; operands are never mutated and
// results never alias them. Shape preconditions are validated eagerly and
// reported through sentinel errors (ErrDimensionMismatch, ErrNonSquare, ...).
// Integer overflow of the 64-bit accumulators is detected by default and
// reported as ErrOverflow; see WithoutOverflowCheck.
package matrix
