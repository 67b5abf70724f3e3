// Package digits_test contains unit tests for the digit-vector algebra.
package digits_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/dcmul/digits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Valid checks the least-significant-first layout and normalization.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want digits.Vector
	}{
		{"0", digits.Vector{0}},
		{"7", digits.Vector{7}},
		{"12345", digits.Vector{5, 4, 3, 2, 1}},
		{"000", digits.Vector{0}},
		{"0042", digits.Vector{2, 4}},
		{"100", digits.Vector{0, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := digits.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

// TestParse_Invalid ensures every malformed string fails with ErrInvalidInput.
func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "-1", "+1", "12a4", " 12", "1.5", "١٢"} {
		_, err := digits.Parse(in)
		require.ErrorIs(t, err, digits.ErrInvalidInput, "input %q", in)
	}
}

// TestMustParse_Panics verifies the panicking variant.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { digits.MustParse("x") })
	assert.NotPanics(t, func() { digits.MustParse("10") })
}

// TestString_RoundTrip checks Parse → String for canonical inputs.
func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "10", "999", "1234567890123456789012345678901234567890"} {
		require.Equal(t, s, digits.MustParse(s).String())
	}
	// Non-normalized vectors still render without leading zeros.
	assert.Equal(t, "42", digits.Vector{2, 4, 0, 0}.String())
	assert.Equal(t, "0", digits.Vector{0, 0, 0}.String())
}

// TestFromUint64 compares against strconv.
func TestFromUint64(t *testing.T) {
	for _, x := range []uint64{0, 1, 9, 10, 65535, 1<<64 - 1} {
		assert.Equal(t, strconv.FormatUint(x, 10), digits.FromUint64(x).String())
	}
}

// TestNormalize verifies stripping and non-aliasing.
func TestNormalize(t *testing.T) {
	in := digits.Vector{3, 0, 0}
	out := digits.Normalize(in)
	assert.Equal(t, digits.Vector{3}, out)
	out[0] = 9
	assert.Equal(t, uint8(3), in[0], "Normalize must not alias its input")

	assert.Equal(t, digits.Vector{0}, digits.Normalize(digits.Vector{0, 0}))
	assert.Equal(t, digits.Vector{0}, digits.Normalize(nil))
}

// TestCmp covers ordering by length and by digit.
func TestCmp(t *testing.T) {
	p := digits.MustParse
	assert.Equal(t, 0, digits.Cmp(p("0"), p("0")))
	assert.Equal(t, -1, digits.Cmp(p("9"), p("10")))
	assert.Equal(t, 1, digits.Cmp(p("100"), p("99")))
	assert.Equal(t, -1, digits.Cmp(p("123"), p("124")))
	assert.Equal(t, 0, digits.Cmp(digits.Vector{5, 0, 0}, p("5")), "high zeros are ignored")
}

// TestAdd covers carry chains and unequal lengths.
func TestAdd(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"1", "9", "10"},
		{"999999999", "1", "1000000000"},
		{"123", "98765", "98888"},
		{"5", "0", "5"},
	}
	for _, tc := range cases {
		got := digits.Add(digits.MustParse(tc.a), digits.MustParse(tc.b))
		assert.Equal(t, tc.want, got.String(), "%s+%s", tc.a, tc.b)
	}
	// Padded operands never leave a high zero behind.
	got := digits.Add(digits.Vector{1, 0, 0}, digits.Vector{2, 0})
	assert.Equal(t, digits.Vector{3}, got)
}

// TestSub covers borrow chains and normalization to zero.
func TestSub(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"10", "1", "9"},
		{"1000000000", "1", "999999999"},
		{"98888", "98765", "123"},
		{"12345", "12345", "0"},
	}
	for _, tc := range cases {
		got := digits.Sub(digits.MustParse(tc.a), digits.MustParse(tc.b))
		assert.Equal(t, tc.want, got.String(), "%s-%s", tc.a, tc.b)
		assert.True(t, len(got) == 1 || got[len(got)-1] != 0, "result must be normalized")
	}
}

// TestSub_PanicsOnUnderflow documents the a ≥ b precondition.
func TestSub_PanicsOnUnderflow(t *testing.T) {
	assert.PanicsWithValue(t, "digits: Sub: minuend smaller than subtrahend", func() {
		digits.Sub(digits.MustParse("5"), digits.MustParse("6"))
	})
	assert.PanicsWithValue(t, "digits: Sub: minuend smaller than subtrahend", func() {
		digits.Sub(digits.MustParse("99"), digits.MustParse("100"))
	})
}

// TestNaiveMul compares against uint64 multiplication on small values.
func TestNaiveMul(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		x := uint64(rng.Int63n(1 << 31))
		y := uint64(rng.Int63n(1 << 31))
		got := digits.NaiveMul(digits.FromUint64(x), digits.FromUint64(y))
		require.Equal(t, strconv.FormatUint(x*y, 10), got.String(), "%d*%d", x, y)
	}
	assert.Equal(t, digits.Vector{0}, digits.NaiveMul(digits.MustParse("123"), digits.Zero()))
}

// TestNaiveMul_Nines checks the longest carry chains: (10^n-1)^2.
func TestNaiveMul_Nines(t *testing.T) {
	n := 40
	nines := digits.MustParse(strings.Repeat("9", n))
	got := digits.NaiveMul(nines, nines).String()
	want := strings.Repeat("9", n-1) + "8" + strings.Repeat("0", n-1) + "1"
	assert.Equal(t, want, got)
}

// TestPadTo checks length alignment without value change.
func TestPadTo(t *testing.T) {
	v := digits.MustParse("12")
	p := digits.PadTo(v, 5)
	assert.Equal(t, digits.Vector{2, 1, 0, 0, 0}, p)
	assert.Equal(t, 0, digits.Cmp(v, p))

	same := digits.PadTo(v, 1)
	assert.Equal(t, v, same)
	same[0] = 7
	assert.Equal(t, uint8(2), v[0], "PadTo must copy")
}

// TestShiftLeft checks multiplication by powers of ten.
func TestShiftLeft(t *testing.T) {
	assert.Equal(t, "12000", digits.ShiftLeft(digits.MustParse("12"), 3).String())
	assert.Equal(t, digits.Vector{0}, digits.ShiftLeft(digits.Zero(), 4))
	assert.Equal(t, "12", digits.ShiftLeft(digits.MustParse("12"), 0).String())
}

// TestSplit verifies a = hi·10^half + lo.
func TestSplit(t *testing.T) {
	a := digits.MustParse("123400567")
	lo, hi := digits.Split(a, 4)
	assert.Equal(t, "567", lo.String()) // "0567" normalized
	assert.Equal(t, "12340", hi.String())

	back := digits.Add(digits.ShiftLeft(hi, 4), lo)
	assert.Equal(t, a, back)

	lo, hi = digits.Split(a, 20)
	assert.Equal(t, a, lo)
	assert.Equal(t, digits.Zero(), hi)
}
