// SPDX-License-Identifier: MIT

package strassen

// DefaultThreshold is the side length at or below which the recursion falls
// back to the naive product.
const DefaultThreshold = 64

// DefaultParallelDepth keeps the engine single-threaded.
const DefaultParallelDepth = 0

const (
	panicThresholdInvalid = "strassen: WithThreshold: threshold must be >= 1"
	panicDepthInvalid     = "strassen: WithParallelDepth: depth must be >= 0"
)

// SplitHook observes each recursive split: depth is 0 at the root and n is
// the (power-of-two) side being split. With a parallel depth > 0 the hook is
// called from several goroutines and must be safe for concurrent use.
type SplitHook func(depth, n int)

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	threshold     int
	parallelDepth int
	onSplit       SplitHook
}

// WithThreshold sets the base-case side length. Panics when t < 1.
func WithThreshold(t int) Option {
	if t < 1 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) { o.threshold = t }
}

// WithParallelDepth runs the seven sub-products concurrently for recursion
// levels shallower than d. Level 0 alone spawns 7 goroutines, levels 0 and 1
// up to 7+49. Panics when d < 0.
func WithParallelDepth(d int) Option {
	if d < 0 {
		panic(panicDepthInvalid)
	}
	return func(o *Options) { o.parallelDepth = d }
}

// WithSplitHook installs an observer called once per recursive split.
func WithSplitHook(h SplitHook) Option {
	return func(o *Options) { o.onSplit = h }
}

func gatherOptions(opts ...Option) Options {
	o := Options{threshold: DefaultThreshold, parallelDepth: DefaultParallelDepth}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
