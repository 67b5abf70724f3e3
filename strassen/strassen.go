// SPDX-License-Identifier: MIT

package strassen

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dcmul/matrix"
	"golang.org/x/sync/errgroup"
)

const opMultiply = "strassen.Multiply"

// Multiply returns the exact product a·b. It is MultiplyContext with a
// background context.
func Multiply(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	return MultiplyContext(context.Background(), a, b, opts...)
}

// MultiplyContext returns the exact product a·b of two square matrices of
// equal side.
//
// Implementation:
//   - Stage 1 (Validate): both non-nil and of equal side, before any work.
//   - Stage 2 (Prepare): m = NextPowerOfTwo(n); zero-pad both operands to
//     m×m unless m == n.
//   - Stage 3 (Execute): recursive core; seven sub-products per level.
//   - Stage 4 (Finalize): truncate the padded product back to n×n.
//
// Padding never changes the top-left n×n block of the product because the
// extra rows of A and columns of B are zero.
//
// Overflow policy:
//   - Under the checked policy every intermediate sum M1..M7 and C11..C22 is
//     checked, so a product whose entries fit in int64 can still be rejected
//     when a sum such as A11+A22 does not (entries near 2^62 times the
//     identity). matrix.Mul accepts those inputs.
//   - Operands built WithoutOverflowCheck use wrapping arithmetic, which is
//     exact modulo 2^64; whenever the true product fits in int64 the result
//     is exact.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (validation).
//   - matrix.ErrOverflow (checked operands only; see above).
//   - ctx.Err() when ctx is canceled; checked once per recursive call.
//
// Complexity:
//   - Time O(m^2.807), Space O(m²) per level, depth O(log m).
func MultiplyContext(ctx context.Context, a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	o := gatherOptions(opts...)

	n := a.Size()
	if n == 0 {
		return a.Clone(), nil
	}
	m := matrix.NextPowerOfTwo(n)
	if m == n {
		c, err := o.core(ctx, a, b, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opMultiply, err)
		}
		return c, nil
	}

	pa, err := matrix.Pad(a, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	pb, err := matrix.Pad(b, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	pc, err := o.core(ctx, pa, pb, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	c, err := matrix.Truncate(pc, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	return c, nil
}

// product is one of the seven recursive sub-products.
type product struct {
	l, r *matrix.Dense
}

// core multiplies two m×m operands, m a power of two (or ≤ threshold).
func (o *Options) core(ctx context.Context, a, b *matrix.Dense, depth int) (*matrix.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := a.Size()
	if n <= o.threshold {
		return matrix.Mul(a, b)
	}
	if o.onSplit != nil {
		o.onSplit(depth, n)
	}

	a11, a12, a21, a22, err := matrix.Split(a)
	if err != nil {
		return nil, err
	}
	b11, b12, b21, b22, err := matrix.Split(b)
	if err != nil {
		return nil, err
	}

	var c chain
	tasks := [7]product{
		{c.add(a11, a22), c.add(b11, b22)}, // M1
		{c.add(a21, a22), b11},             // M2
		{a11, c.sub(b12, b22)},             // M3
		{a22, c.sub(b21, b11)},             // M4
		{c.add(a11, a12), b22},             // M5
		{c.sub(a21, a11), c.add(b11, b12)}, // M6
		{c.sub(a12, a22), c.add(b21, b22)}, // M7
	}
	if c.err != nil {
		return nil, c.err
	}

	var ms [7]*matrix.Dense
	if depth < o.parallelDepth {
		err = o.fanOut(ctx, &tasks, &ms, depth)
	} else {
		for i := range tasks {
			if ms[i], err = o.core(ctx, tasks[i].l, tasks[i].r, depth+1); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	m1, m2, m3, m4, m5, m6, m7 := ms[0], ms[1], ms[2], ms[3], ms[4], ms[5], ms[6]
	c11 := c.add(c.sub(c.add(m1, m4), m5), m7)
	c12 := c.add(m3, m5)
	c21 := c.add(m2, m4)
	c22 := c.add(c.add(c.sub(m1, m2), m3), m6)
	if c.err != nil {
		return nil, c.err
	}
	return matrix.Merge(c11, c12, c21, c22)
}

// fanOut computes the seven sub-products concurrently. Operands are shared
// read-only between goroutines; each goroutine writes only its own slot.
func (o *Options) fanOut(ctx context.Context, tasks *[7]product, ms *[7]*matrix.Dense, depth int) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range tasks {
		i := i // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			p, err := o.core(gctx, tasks[i].l, tasks[i].r, depth+1)
			if err != nil {
				return err
			}
			ms[i] = p
			return nil
		})
	}
	return g.Wait()
}
