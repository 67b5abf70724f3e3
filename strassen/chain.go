// SPDX-License-Identifier: MIT

package strassen

import "github.com/katalvlaran/dcmul/matrix"

// chain sequences matrix additions and subtractions, remembering the first
// error. Once an error is recorded every further call is a no-op returning nil.
type chain struct {
	err error
}

func (c *chain) add(x, y *matrix.Dense) *matrix.Dense {
	if c.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, c.err = matrix.Add(x, y)
	return r
}

func (c *chain) sub(x, y *matrix.Dense) *matrix.Dense {
	if c.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, c.err = matrix.Sub(x, y)
	return r
}
