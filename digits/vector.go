// SPDX-License-Identifier: MIT

// Package digits - Vector type, normalization and comparison.
//
// Purpose:
//   - Define the least-significant-first digit representation.
//   - Keep the "no most-significant zero" invariant in one place (Normalize).
//
// Complexity quicksheet:
//   - Normalize, Clone, String: O(n); Cmp: O(n) worst case, O(1) on length mismatch.

package digits

import "strings"

// Base is the radix of every Vector.
const Base = 10

// Vector is a non-negative decimal integer, least-significant digit first.
// The zero value (nil) is not a valid Vector; use Zero() or Parse.
type Vector []uint8

// Zero returns the canonical representation of zero, [0].
func Zero() Vector { return Vector{0} }

// FromUint64 converts x into a normalized Vector.
// Complexity: O(log10 x).
func FromUint64(x uint64) Vector {
	if x == 0 {
		return Zero()
	}
	v := make(Vector, 0, 20) // 20 digits cover the full uint64 range
	for x > 0 {
		v = append(v, uint8(x%Base))
		x /= Base
	}
	return v
}

// IsZero reports whether v encodes the value zero.
// A non-normalized vector of zeros also counts as zero.
func IsZero(v Vector) bool {
	for _, d := range v {
		if d != 0 {
			return false
		}
	}
	return true
}

// Normalize strips most-significant zero digits, keeping a single [0] for the
// value zero. The result never aliases v.
//
// Implementation:
//   - Stage 1: scan from the high end for the first non-zero digit.
//   - Stage 2: copy the significant prefix into a fresh slice.
//
// Complexity: O(n) time, O(n) space.
func Normalize(v Vector) Vector {
	top := len(v) - 1
	for top > 0 && v[top] == 0 {
		top--
	}
	if top < 0 { // empty input
		return Zero()
	}
	out := make(Vector, top+1)
	copy(out, v[:top+1])
	return out
}

// trim strips most-significant zeros in place and returns the shortened slice.
// Used on freshly allocated buffers owned by the caller only.
func trim(v Vector) Vector {
	for len(v) > 1 && v[len(v)-1] == 0 {
		v = v[:len(v)-1]
	}
	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Len returns the number of stored digits.
func (v Vector) Len() int { return len(v) }

// String renders v as a decimal string without leading zeros ("0" for zero).
// Complexity: O(n).
func (v Vector) String() string {
	n := Normalize(v)
	var sb strings.Builder
	sb.Grow(len(n))
	for i := len(n) - 1; i >= 0; i-- {
		sb.WriteByte('0' + n[i])
	}
	return sb.String()
}

// Cmp compares the values encoded by a and b and returns -1, 0 or +1.
// Both operands may carry most-significant zeros; they are ignored.
//
// Complexity: O(max(|a|,|b|)).
func Cmp(a, b Vector) int {
	la, lb := significantLen(a), significantLen(b)
	if la != lb {
		if la < lb {
			return -1
		}
		return 1
	}
	for i := la - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// significantLen is the length of v without most-significant zeros (≥ 1 for
// non-empty input, so zero has length 1).
func significantLen(v Vector) int {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}
	return n
}
