// SPDX-License-Identifier: MIT

package karatsuba

import "github.com/katalvlaran/dcmul/digits"

// Multiply returns the exact product of a and b.
//
// Algorithm Outline:
//  1. n = max(|a|,|b|). If n ≤ threshold, return digits.NaiveMul(a, b).
//  2. Pad both operands to n digits; half = n/2.
//  3. Split: a = a1·10^half + a0, b = b1·10^half + b0.
//  4. z2 = K(a1,b1), z0 = K(a0,b0), zc = K(a1+a0, b1+b0).
//  5. z1 = zc − z2 − z0.
//  6. result = z2·10^(2·half) + z1·10^half + z0.
//
// Both subtractions in step 5 are non-negative for non-negative operands
// (zc − z2 − z0 = a1·b0 + a0·b1); digits.Sub panics if that ever breaks.
//
// Complexity: O(n^1.585) time, O(log n) recursion depth.
func Multiply(a, b digits.Vector, opts ...Option) digits.Vector {
	o := gatherOptions(opts...)
	return o.multiply(a, b, 0)
}

// multiply is the recursive worker; depth feeds the split hook only.
func (o *Options) multiply(a, b digits.Vector, depth int) digits.Vector {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n <= o.threshold {
		return digits.NaiveMul(a, b)
	}
	if o.onSplit != nil {
		o.onSplit(depth, n)
	}

	half := n / 2
	a0, a1 := digits.Split(digits.PadTo(a, n), half)
	b0, b1 := digits.Split(digits.PadTo(b, n), half)

	z2 := o.multiply(a1, b1, depth+1)
	z0 := o.multiply(a0, b0, depth+1)
	zc := o.multiply(digits.Add(a1, a0), digits.Add(b1, b0), depth+1)

	z1 := digits.Sub(digits.Sub(zc, z2), z0)

	res := digits.Add(digits.ShiftLeft(z2, 2*half), digits.ShiftLeft(z1, half))
	return digits.Normalize(digits.Add(res, z0))
}
