// SPDX-License-Identifier: MIT

// Package strassen multiplies dense square integer matrices with the
// Strassen divide-and-conquer algorithm.
//
// 🚀 What is Strassen?
//
//	Splitting A and B into 2×2 blocks of quadrants, the block product needs
//	eight quadrant products. Strassen combines seven cleverly chosen products
//	M1..M7 into the four result quadrants instead, for O(n^2.807):
//
//	  M1 = (A11+A22)(B11+B22)   M5 = (A11+A12)B22
//	  M2 = (A21+A22)B11         M6 = (A21−A11)(B11+B12)
//	  M3 = A11(B12−B22)         M7 = (A12−A22)(B21+B22)
//	  M4 = A22(B21−B11)
//
//	  C11 = M1+M4−M5+M7   C12 = M3+M5
//	  C21 = M2+M4         C22 = M1−M2+M3+M6
//
// ✨ Key features:
//   - any side length: operands are zero-padded to the next power of two
//     and the product is truncated back
//   - configurable base-case threshold (DefaultThreshold = 64)
//   - eager validation: nil or mismatched operands fail before recursion
//   - opt-in parallel fan-out of the seven sub-products near the root
//   - int64 overflow checked in every intermediate sum by default; this is
//     stricter than matrix.Mul, see MultiplyContext
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dcmul/strassen"
//
//	c, err := strassen.Multiply(a, b)                                 // sequential
//	c, err = strassen.Multiply(a, b, strassen.WithParallelDepth(2))   // ≤ 7+49 goroutines
//
// Performance:
//
//   - Time:   O(n^log2(7)) above the threshold, O(n³) below it
//   - Memory: O(n²) temporaries per level, O(log n) recursion depth
package strassen
