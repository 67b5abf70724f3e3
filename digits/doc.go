// SPDX-License-Identifier: MIT

// Package digits implements arithmetic on non-negative decimal integers stored
// as digit vectors.
//
// 🚀 What is a digit vector?
//
//	A Vector holds one decimal digit per element, least-significant digit
//	first, so "12345" is stored as [5 4 3 2 1]. Low-order alignment makes
//	carry and borrow propagation a plain left-to-right walk:
//	  • Add       — schoolbook addition with carry
//	  • Sub       — schoolbook subtraction with borrow (minuend ≥ subtrahend)
//	  • NaiveMul  — O(|a|·|b|) convolution with base-10 carry
//	  • PadTo, ShiftLeft, Split — structural helpers used by Karatsuba
//
// ✨ Invariants:
//   - every digit is in [0,9];
//   - length ≥ 1 and no most-significant zero digits, except the value zero,
//     which is exactly [0];
//   - every operation returns a freshly allocated Vector; inputs are never
//     mutated.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dcmul/digits"
//
//	a, err := digits.Parse("123456789")
//	if err != nil {
//	  // errors.Is(err, digits.ErrInvalidInput)
//	}
//	b := digits.MustParse("987654321")
//	fmt.Println(digits.NaiveMul(a, b)) // 121932631112635269
//
// Performance:
//
//   - Add, Sub, PadTo, ShiftLeft, Split: O(n)
//   - NaiveMul: O(n·m) time, O(n+m) memory
package digits
