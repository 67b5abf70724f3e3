package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/dcmul/matrix"
	"github.com/katalvlaran/dcmul/strassen"
)

// ExampleMultiply multiplies two 3×3 matrices, padding to 4×4 internally.
func ExampleMultiply() {
	a, _ := matrix.NewFromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b, _ := matrix.NewFromRows([][]int64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})

	c, err := strassen.Multiply(a, b, strassen.WithThreshold(1))
	if err != nil {
		panic(err)
	}
	fmt.Print(c)
	// Output:
	// [30, 24, 18]
	// [84, 69, 54]
	// [138, 114, 90]
}
