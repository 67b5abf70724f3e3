// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Policy travels with the data: each Dense records whether overflow is
//     checked, and results inherit the policy of their operands (checked wins).
package matrix

// DefaultCheckOverflow toggles detection of int64 overflow in Add, Sub and
// Mul. Checking costs a few extra comparisons per element.
const DefaultCheckOverflow = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	checkOverflow bool // DefaultCheckOverflow
}

// WithOverflowCheck enables int64 overflow detection (the default).
func WithOverflowCheck() Option {
	return func(o *Options) { o.checkOverflow = true }
}

// WithoutOverflowCheck disables overflow detection. Arithmetic then wraps
// silently, which is acceptable only when callers bound their inputs
// (e.g. entries in 0..9 and sides far below 10^17).
func WithoutOverflowCheck() Option {
	return func(o *Options) { o.checkOverflow = false }
}

// gatherOptions applies user options over the defaults in order;
// last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{checkOverflow: DefaultCheckOverflow}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	return o
}
