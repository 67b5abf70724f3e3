// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether x and y have the same side and identical entries.
// Two 0×0 matrices are equal; nil equals only nil. The overflow policy is
// not compared.
//
// Complexity: O(n²) worst case; O(1) on side mismatch.
func Equal(x, y *Dense) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.n != y.n {
		return false
	}
	for idx := range x.data {
		if x.data[idx] != y.data[idx] {
			return false
		}
	}
	return true
}
