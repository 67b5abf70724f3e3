// SPDX-License-Identifier: MIT

// Package digits - schoolbook kernels (add, subtract, multiply).
//
// Determinism & Performance:
//   - Single pass from the least significant digit upwards.
//   - One allocation per call for the result; carries live in int registers.

package digits

// Add returns a + b.
//
// Implementation:
//   - Stage 1: walk positions while either operand has digits or a carry is pending.
//   - Stage 2: strip a most-significant zero left by non-normalized operands.
//
// Complexity: O(max(|a|,|b|)) time, result length ≤ max(|a|,|b|)+1.
func Add(a, b Vector) Vector {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Vector, 0, n+1)

	var carry, x, y, sum int
	for i := 0; i < n || carry != 0; i++ {
		x, y = 0, 0
		if i < len(a) {
			x = int(a[i])
		}
		if i < len(b) {
			y = int(b[i])
		}
		sum = x + y + carry
		out = append(out, uint8(sum%Base))
		carry = sum / Base
	}
	if len(out) == 0 { // both operands empty
		return Zero()
	}
	return trim(out)
}

// Sub returns a - b.
//
// Precondition: a ≥ b numerically. Violating it is a programmer error and
// Sub panics rather than returning a wrapped-around value.
//
// Implementation:
//   - Stage 1: walk a's digits, borrowing from the next position when x < y.
//   - Stage 2: a borrow left after the last digit (or digits of b beyond a's
//     significant length) means a < b ⇒ panic.
//   - Stage 3: normalize.
//
// Complexity: O(max(|a|,|b|)).
func Sub(a, b Vector) Vector {
	if significantLen(b) > len(a) {
		panic(panicSubUnderflow)
	}
	out := make(Vector, len(a))

	var borrow, x, y int
	for i := 0; i < len(a); i++ {
		x = int(a[i]) - borrow
		y = 0
		if i < len(b) {
			y = int(b[i])
		}
		if x < y {
			x += Base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint8(x - y)
	}
	if borrow != 0 {
		panic(panicSubUnderflow)
	}
	if len(out) == 0 {
		return Zero()
	}
	return trim(out)
}

// NaiveMul returns a · b using the classic O(|a|·|b|) convolution.
// Each row i adds a[i]·b into the product at offset i and propagates its
// carry to completion before the next row starts.
//
// Complexity: O(|a|·|b|) time, O(|a|+|b|) space.
func NaiveMul(a, b Vector) Vector {
	if len(a) == 0 || len(b) == 0 || IsZero(a) || IsZero(b) {
		return Zero()
	}
	prod := make([]int, len(a)+len(b))

	var carry, sum, j int
	for i := 0; i < len(a); i++ {
		ai := int(a[i])
		if ai == 0 {
			continue // the row contributes nothing
		}
		carry = 0
		for j = 0; j < len(b) || carry != 0; j++ {
			sum = prod[i+j] + carry
			if j < len(b) {
				sum += ai * int(b[j])
			}
			prod[i+j] = sum % Base
			carry = sum / Base
		}
	}

	out := make(Vector, len(prod))
	for k, d := range prod {
		out[k] = uint8(d)
	}
	return trim(out)
}
