package karatsuba_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dcmul/digits"
	"github.com/katalvlaran/dcmul/karatsuba"
)

var sinkV digits.Vector

// benchmarkMultiply compares Karatsuba against the schoolbook kernel on
// n-digit operands.
func benchmarkMultiply(b *testing.B, n int, naive bool) {
	rng := rand.New(rand.NewSource(int64(n)))
	x := digits.MustParse(randomDecimal(rng, n))
	y := digits.MustParse(randomDecimal(rng, n))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if naive {
			sinkV = digits.NaiveMul(x, y)
		} else {
			sinkV = karatsuba.Multiply(x, y)
		}
	}
}

func BenchmarkMultiply(b *testing.B) {
	for _, n := range []int{128, 1000, 4000} {
		b.Run(fmt.Sprintf("karatsuba/n=%d", n), func(b *testing.B) { benchmarkMultiply(b, n, false) })
		b.Run(fmt.Sprintf("naive/n=%d", n), func(b *testing.B) { benchmarkMultiply(b, n, true) })
	}
}
