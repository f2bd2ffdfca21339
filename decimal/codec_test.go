package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New(129, 8)
	require.Error(t, err)

	_, err = New(16, 0)
	require.Error(t, err)

	_, err = New(16, 16)
	require.Error(t, err)

	c, err := New(16, 15)
	require.NoError(t, err)
	require.Equal(t, 0, c.MantissaBits())

	require.Panics(t, func() { MustNew(8, 0) })
	require.Panics(t, func() { MustNewUnsigned(200, 8) })
}

func TestAccessors(t *testing.T) {
	c := MustNew(16, 5)
	require.Equal(t, 16, c.Bits())
	require.Equal(t, 5, c.ExponentBits())
	require.Equal(t, 10, c.MantissaBits())
	require.True(t, c.Signed())
	require.Equal(t, math.Pow(2, 16), c.MaxValue())

	u := MustNewUnsigned(16, 5)
	require.Equal(t, 11, u.MantissaBits())
	require.False(t, u.Signed())
}

func TestFloat32LayoutBitExact(t *testing.T) {
	c := MustNew(32, 8)

	values := []float64{
		0.0, 1.5, -0.5, 0.1, 3.14159, 65536.25,
		math.Inf(1), math.Inf(-1),
	}
	for _, v := range values {
		want := uint64(math.Float32bits(float32(v)))
		require.Equal(t, want, c.EncodeUint64(v), "value %v", v)
		require.Equal(t, float64(float32(v)), c.DecodeUint64(want), "value %v", v)
	}
}

func TestFloat64LayoutBitExact(t *testing.T) {
	c := MustNew(64, 11)

	values := []float64{
		0.0, 1.5, -0.5, 0.1, math.Pi, -math.E, 1e300, 1e-300,
		math.Inf(1), math.Inf(-1),
	}
	for _, v := range values {
		want := math.Float64bits(v)
		require.Equal(t, want, c.EncodeUint64(v), "value %v", v)
		require.Equal(t, v, c.DecodeUint64(want), "value %v", v)
	}
}

func TestNaN(t *testing.T) {
	for _, c := range []*Codec{MustNew(8, 3), MustNew(16, 5), MustNew(32, 8), MustNew(64, 11)} {
		got := c.Decode(c.Encode(math.NaN()))
		require.True(t, math.IsNaN(got), "%d-bit codec", c.Bits())
	}
}

func TestNegativeZeroNormalizes(t *testing.T) {
	c := MustNew(16, 5)

	require.True(t, c.Encode(math.Copysign(0, -1)).IsZero())
	got := c.DecodeUint64(c.EncodeUint64(math.Copysign(0, -1)))
	require.Equal(t, 0.0, got)
	require.False(t, math.Signbit(got))
}

func TestRoundTripSmallCodec(t *testing.T) {
	// (8,3): 4 mantissa bits, bias 3, range (2^-6, 2^4)
	c := MustNew(8, 3)

	for _, v := range []float64{0, 1.5, -2.5, 0.75, -12, 15, 0.015625} {
		require.Equal(t, v, c.DecodeUint64(c.EncodeUint64(v)), "value %v", v)
	}
}

func TestOverflowEncodesInfinity(t *testing.T) {
	c := MustNew(8, 3)
	require.Equal(t, 16.0, c.MaxValue())

	require.True(t, math.IsInf(c.DecodeUint64(c.EncodeUint64(100)), 1))
	require.True(t, math.IsInf(c.DecodeUint64(c.EncodeUint64(-100)), -1))
}

func TestUnderflowEncodesZero(t *testing.T) {
	c := MustNew(8, 3)
	require.Equal(t, math.Pow(2, -6), c.MinValue())

	require.True(t, c.Encode(math.Pow(2, -7)).IsZero())
	require.True(t, c.Encode(-math.Pow(2, -7)).IsZero())
	require.Equal(t, 0.0, c.DecodeUint64(c.EncodeUint64(math.Pow(2, -7))))
}

func TestSubnormalRoundTrip(t *testing.T) {
	c := MustNew(8, 3)

	// subnormals for (8,3) live in [2^-6, 2^-2)
	for _, v := range []float64{math.Pow(2, -6), 3 * math.Pow(2, -6), -5 * math.Pow(2, -6)} {
		require.Equal(t, v, c.DecodeUint64(c.EncodeUint64(v)), "value %v", v)
	}
}

// A wide-exponent 8-bit layout trades nearly all mantissa for range: with a
// single mantissa bit it cannot represent 5.0, yet its smallest subnormal
// reaches 2^-31.
func TestWideExponentTradeoff(t *testing.T) {
	c := MustNew(8, 6)
	require.Equal(t, 1, c.MantissaBits())

	require.Equal(t, 4.0, c.DecodeUint64(c.EncodeUint64(5.0)))

	smallest := math.Pow(2, -31) // 4.656612873077393e-10
	require.Equal(t, smallest, c.MinValue())
	require.Equal(t, smallest, c.DecodeUint64(c.EncodeUint64(smallest)))
}

func TestUnsignedSpecials(t *testing.T) {
	for _, c := range []*Codec{MustNewUnsigned(8, 3), MustNewUnsigned(16, 5), MustNewUnsigned(64, 11)} {
		require.True(t, math.IsInf(c.DecodeUint64(c.EncodeUint64(math.Inf(1))), 1), "%d-bit codec", c.Bits())

		// without a sign bit, -Inf collapses to +Inf
		require.True(t, math.IsInf(c.DecodeUint64(c.EncodeUint64(math.Inf(-1))), 1), "%d-bit codec", c.Bits())

		require.True(t, math.IsNaN(c.DecodeUint64(c.EncodeUint64(math.NaN()))), "%d-bit codec", c.Bits())
	}
}

func TestInfinityWithOverflowedRange(t *testing.T) {
	// exponent widths of 11 and up push maxValue itself past float64 to
	// +Inf; an Infinity input must still land on the special exponent
	// rather than leaking into the normal-number branch.
	for _, c := range []*Codec{MustNewUnsigned(64, 11), MustNew(128, 15), MustNewUnsigned(128, 20)} {
		require.True(t, math.IsInf(c.MaxValue(), 1), "%d/%d codec", c.Bits(), c.ExponentBits())
		require.True(t, math.IsInf(c.Decode(c.Encode(math.Inf(1))), 1), "%d/%d codec", c.Bits(), c.ExponentBits())
	}

	signed := MustNew(128, 15)
	require.True(t, math.IsInf(signed.Decode(signed.Encode(math.Inf(-1))), -1))
}

func TestUnsignedIgnoresSign(t *testing.T) {
	c := MustNewUnsigned(16, 5)

	require.Equal(t, c.Encode(1.5), c.Encode(-1.5))
	require.Equal(t, 1.5, c.DecodeUint64(c.EncodeUint64(-1.5)))

	// the extra mantissa bit is actually in play: 11 bits instead of 10
	require.Equal(t, 11, c.MantissaBits())
}

func TestLastBitRounding(t *testing.T) {
	// (8,3) keeps 4 mantissa bits. Both inputs truncate to mantissa 1010;
	// the residue decides whether the last bit rounds up to 1011.
	c := MustNew(8, 3)

	// residue 0.5 of the last step: below the 2/3 threshold, truncates
	require.Equal(t, 1.625, c.DecodeUint64(c.EncodeUint64(1.65625)))

	// residue 0.75 of the last step: at or above the threshold, rounds up
	require.Equal(t, 1.6875, c.DecodeUint64(c.EncodeUint64(1.671875)))
}

func TestWideCodec(t *testing.T) {
	// 128-bit layout with a 15-bit exponent and 112 mantissa bits; every
	// float64 input is exactly representable.
	c := MustNew(128, 15)

	for _, v := range []float64{0, 1.5, -math.Pi, 1e300, -1e-300, 123456.789} {
		require.Equal(t, v, c.Decode(c.Encode(v)), "value %v", v)
	}

	require.True(t, math.IsInf(c.Decode(c.Encode(math.Inf(1))), 1))
	require.True(t, math.IsNaN(c.Decode(c.Encode(math.NaN()))))
}

func TestDecodeSpecialPatterns(t *testing.T) {
	c := MustNew(16, 5)

	// all-ones exponent, zero mantissa: infinity with the pattern's sign
	inf := uint64(0b11111) << 10
	require.True(t, math.IsInf(c.DecodeUint64(inf), 1))
	require.True(t, math.IsInf(c.DecodeUint64(inf|1<<15), -1))

	// all-ones exponent, nonzero mantissa: NaN
	require.True(t, math.IsNaN(c.DecodeUint64(inf|1)))
}

func TestInverseBinary(t *testing.T) {
	// 0.75 is 0.11 in binary
	require.Equal(t, FromUint64(0b110), inverseBinary(0.75, 3))
	require.Equal(t, FromUint64(0b101), inverseBinary(0.625, 3))
	require.Equal(t, Uint128{}, inverseBinary(0, 4))
}
