// Package digits_test provides benchmarks for the schoolbook kernels,
// using deterministic random operands.
package digits_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dcmul/digits"
)

// benchLengths are the operand lengths (in digits) to benchmark.
var benchLengths = []int{64, 256, 1024}

// sinkV defeats dead-code elimination.
var sinkV digits.Vector

// randomVector builds an n-digit vector with a non-zero top digit.
func randomVector(rng *rand.Rand, n int) digits.Vector {
	v := make(digits.Vector, n)
	for i := range v {
		v[i] = uint8(rng.Intn(10))
	}
	v[n-1] = uint8(1 + rng.Intn(9))
	return v
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			x, y := randomVector(rng, n), randomVector(rng, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = digits.Add(x, y)
			}
		})
	}
}

func BenchmarkNaiveMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			x, y := randomVector(rng, n), randomVector(rng, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = digits.NaiveMul(x, y)
			}
		})
	}
}
