// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the overflow policy from a single source of truth (options.go).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/ToRows: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major square matrix of int64.
//   - n is the side length (n ≥ 0; 0×0 is a valid empty matrix).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - checkOverflow enables int64 overflow detection in arithmetic.
type Dense struct {
	n             int     // side length
	data          []int64 // contiguous row-major storage (len == n*n)
	checkOverflow bool    // numeric guard: report ErrOverflow when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix.
//
// Implementation:
//   - Stage 1: validate n ≥ 0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer and resolve the numeric policy.
//
// Errors:
//   - ErrBadShape (negative side).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int, opts ...Option) (*Dense, error) {
	if n < 0 {
		return nil, ErrBadShape
	}
	o := gatherOptions(opts...)

	return &Dense{
		n:             n,
		data:          make([]int64, n*n), // make() zero-fills deterministically
		checkOverflow: o.checkOverflow,
	}, nil
}

// newDenseLike allocates an n×n zero matrix whose policy is the union of the
// given operands' policies (checked wins). n must be ≥ 0.
func newDenseLike(n int, from ...*Dense) *Dense {
	check := false
	for _, m := range from {
		if m != nil && m.checkOverflow {
			check = true
		}
	}
	return &Dense{n: n, data: make([]int64, n*n), checkOverflow: check}
}

// NewFromRows builds a Dense from a slice of rows, copying every value.
// All rows must have length len(rows).
//
// Errors:
//   - ErrNonSquare (ragged rows or rows×cols mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows(rows [][]int64, opts ...Option) (*Dense, error) {
	if err := ValidateSquareRows(rows); err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	n := len(rows)
	m, err := NewDense(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	for i, r := range rows {
		copy(m.data[i*n:(i+1)*n], r)
	}
	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Size returns the side length n.
func (m *Dense) Size() int { return m.n }

// Rows returns the row count (== Size()).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count (== Size()).
func (m *Dense) Cols() int { return m.n }

// CheckOverflow reports whether arithmetic on m detects int64 overflow.
func (m *Dense) CheckOverflow() bool { return m.checkOverflow }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; At/Set wrap with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[idx], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
// Set is the only mutating method; it exists for builders and tests.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy with the same policy.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	out := &Dense{n: m.n, data: make([]int64, len(m.data)), checkOverflow: m.checkOverflow}
	copy(out.data, m.data)
	return out
}

// ToRows copies the matrix into a fresh [][]int64.
// Complexity: O(n²).
func (m *Dense) ToRows() [][]int64 {
	rows := make([][]int64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]int64, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}
	return rows
}

// String implements fmt.Stringer: one "[a, b, c]" line per row.
// Complexity: O(n²).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.n+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
