// SPDX-License-Identifier: MIT

// Package karatsuba multiplies arbitrary-precision non-negative decimal
// integers with the Karatsuba divide-and-conquer algorithm.
//
// 🚀 What is Karatsuba?
//
//	Writing a = a1·10^h + a0 and b = b1·10^h + b0, the product needs
//	a1·b1, a0·b0 and the cross term a1·b0 + a0·b1. Karatsuba obtains the
//	cross term from one extra product,
//
//	  (a1+a0)(b1+b0) − a1·b1 − a0·b0,
//
//	so every level recurses three times instead of four, for O(n^1.585).
//
// ✨ Key features:
//   - digit vectors from package digits, least-significant digit first
//   - configurable base-case threshold (DefaultThreshold = 64 digits)
//   - naive reference multiplier for verification and benchmarking
//   - split hook for observing the recursion
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dcmul/karatsuba"
//
//	p, err := karatsuba.MultiplyDecimal("31415926535897932384626", "27182818284590452353602")
//	if err != nil {
//	  // errors.Is(err, digits.ErrInvalidInput)
//	}
//
// Performance:
//
//   - Time:   O(n^log2(3)) above the threshold, O(n²) below it
//   - Memory: O(n) live temporaries per level, O(log n) recursion depth
package karatsuba
