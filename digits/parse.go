// SPDX-License-Identifier: MIT

package digits

// Parse converts a decimal string into a normalized Vector.
// The string must be non-empty and consist of '0'..'9' only; leading zeros
// are accepted and dropped ("007" parses as 7).
//
// Errors:
//   - ErrInvalidInput (wrapped with the offending byte and position).
//
// Complexity: O(len(s)).
func Parse(s string) (Vector, error) {
	if len(s) == 0 {
		return nil, ErrInvalidInput
	}
	n := len(s)
	v := make(Vector, n)
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, parseErrorf(i, c)
		}
		v[n-1-i] = c - '0' // reverse: most significant char goes last
	}
	return trim(v), nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for tests, examples and package-level fixtures.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
