// SPDX-License-Identifier: MIT

package karatsuba

import (
	"fmt"

	"github.com/katalvlaran/dcmul/digits"
)

const (
	opMultiplyDecimal = "MultiplyDecimal"
	opNaiveDecimal    = "NaiveMultiplyDecimal"
)

// MultiplyDecimal multiplies two decimal strings with Karatsuba.
//
// Inputs must be non-empty strings of '0'..'9'. Leading zeros are tolerated.
// The result has no leading zeros and is "0" when either operand is zero.
//
// Errors:
//   - digits.ErrInvalidInput (wrapped with the operand name).
func MultiplyDecimal(a, b string, opts ...Option) (string, error) {
	x, y, err := parsePair(opMultiplyDecimal, a, b)
	if err != nil {
		return "", err
	}
	if digits.IsZero(x) || digits.IsZero(y) {
		return "0", nil
	}
	return Multiply(x, y, opts...).String(), nil
}

// NaiveMultiplyDecimal is the schoolbook reference for MultiplyDecimal with
// the same contract.
func NaiveMultiplyDecimal(a, b string) (string, error) {
	x, y, err := parsePair(opNaiveDecimal, a, b)
	if err != nil {
		return "", err
	}
	if digits.IsZero(x) || digits.IsZero(y) {
		return "0", nil
	}
	return digits.NaiveMul(x, y).String(), nil
}

// parsePair parses both operands, tagging failures with op and the operand side.
func parsePair(op, a, b string) (digits.Vector, digits.Vector, error) {
	x, err := digits.Parse(a)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: left operand: %w", op, err)
	}
	y, err := digits.Parse(b)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: right operand: %w", op, err)
	}
	return x, y, nil
}
