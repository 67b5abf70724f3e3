// SPDX-License-Identifier: MIT

package karatsuba

// DefaultThreshold is the operand length (in digits) at or below which
// Multiply falls back to the schoolbook kernel.
const DefaultThreshold = 64

const panicThresholdInvalid = "karatsuba: WithThreshold: threshold must be >= 1"

// SplitHook observes each recursive split: depth is 0 at the top level and
// n is the aligned operand length being split.
type SplitHook func(depth, n int)

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	threshold int
	onSplit   SplitHook
}

// WithThreshold sets the base-case threshold. Panics when t < 1.
func WithThreshold(t int) Option {
	if t < 1 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) { o.threshold = t }
}

// WithSplitHook installs an observer called once per recursive split.
// A nil hook is ignored.
func WithSplitHook(h SplitHook) Option {
	return func(o *Options) { o.onSplit = h }
}

// gatherOptions resolves opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{threshold: DefaultThreshold}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
