// SPDX-License-Identifier: MIT

package digits

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a decimal string is empty or contains a
// byte outside '0'..'9'. Signs, separators and whitespace are all rejected.
var ErrInvalidInput = errors.New("digits: invalid decimal input")

// panicSubUnderflow is the stable panic message raised by Sub when the
// minuend is numerically smaller than the subtrahend.
const panicSubUnderflow = "digits: Sub: minuend smaller than subtrahend"

// parseErrorf attaches the offending position to ErrInvalidInput.
func parseErrorf(pos int, b byte) error {
	return fmt.Errorf("Parse: byte %q at %d: %w", b, pos, ErrInvalidInput)
}
