// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opPad      = "Pad"
	opTruncate = "Truncate"
)

// NextPowerOfTwo returns the smallest power of two ≥ n (1 for n ≤ 1).
func NextPowerOfTwo(n int) int {
	m := 1
	for m < n {
		m <<= 1
	}
	return m
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Pad returns a new m×m matrix holding a in its top-left corner and zeros
// elsewhere. m == a.Size() yields a copy.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (m < a.Size()).
//
// Complexity: O(m²).
func Pad(a *Dense, m int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if m < a.n {
		return nil, matrixErrorf(opPad, fmt.Errorf("target %d < side %d: %w", m, a.n, ErrBadShape))
	}
	out := newDenseLike(m, a)
	for i := 0; i < a.n; i++ {
		copy(out.data[i*m:i*m+a.n], a.data[i*a.n:(i+1)*a.n])
	}
	return out, nil
}

// Truncate returns a new n×n matrix with the top-left block of a, dropping
// the remaining rows and columns.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (n < 0 or n > a.Size()).
//
// Complexity: O(n²).
func Truncate(a *Dense, n int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTruncate, err)
	}
	if n < 0 || n > a.n {
		return nil, matrixErrorf(opTruncate, fmt.Errorf("target %d outside [0,%d]: %w", n, a.n, ErrBadShape))
	}
	out := newDenseLike(n, a)
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], a.data[i*a.n:i*a.n+n])
	}
	return out, nil
}
