// SPDX-License-Identifier: MIT

package digits

// PadTo appends zero digits at the high end until the vector has length n.
// The numeric value is unchanged; the result is a copy even when |a| ≥ n.
// Used only to align operands before splitting.
func PadTo(a Vector, n int) Vector {
	size := len(a)
	if n > size {
		size = n
	}
	out := make(Vector, size) // make() zero-fills the padding
	copy(out, a)
	return out
}

// ShiftLeft multiplies a by 10^k by prefixing k zero digits.
// Zero stays [0] so the normalization invariant holds; k ≤ 0 returns a copy.
func ShiftLeft(a Vector, k int) Vector {
	if k <= 0 || IsZero(a) {
		return Normalize(a)
	}
	out := make(Vector, k+len(a))
	copy(out[k:], a)
	return trim(out)
}

// Split cuts a at position half so that a = hi·10^half + lo.
// lo holds the first half digits, hi the rest; both are normalized copies.
// half is clamped to [0, len(a)].
func Split(a Vector, half int) (lo, hi Vector) {
	if half < 0 {
		half = 0
	}
	if half > len(a) {
		half = len(a)
	}
	return Normalize(a[:half]), Normalize(a[half:])
}
