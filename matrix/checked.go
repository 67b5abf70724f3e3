// SPDX-License-Identifier: MIT

package matrix

import "math"

// addInt64 returns x+y and whether the sum overflowed int64.
// Overflow happens only when both operands share a sign the sum lacks.
func addInt64(x, y int64) (int64, bool) {
	s := x + y
	return s, (x >= 0) == (y >= 0) && (s >= 0) != (x >= 0)
}

// subInt64 returns x-y and whether the difference overflowed int64.
func subInt64(x, y int64) (int64, bool) {
	d := x - y
	return d, (x >= 0) != (y >= 0) && (d >= 0) != (x >= 0)
}

// mulInt64 returns x*y and whether the product overflowed int64.
func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	p := x * y
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return p, true
	}
	return p, p/y != x
}
