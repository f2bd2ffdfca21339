package decimal

import (
	"fmt"
	"math"
)

// MaxBits is the widest bit pattern a Codec can produce.
const MaxBits = 128

// lastBitRoundThreshold is the fractional residue at which the final
// mantissa bit rounds up instead of truncating. The wire format rounds the
// last bit up only when at least two thirds of a step remains, so the
// threshold must stay at exactly 2/3 for bit compatibility.
const lastBitRoundThreshold = 2.0 / 3.0

// Codec converts float64 values to and from fixed-width IEEE-754 style bit
// patterns. The total width, exponent width and signedness are fixed at
// construction; all derived masks and constants are computed once and
// reused for every Encode/Decode call.
//
// A Codec is immutable and safe for concurrent use. Create one instance per
// (width, exponent width, signedness) combination and reuse it.
type Codec struct {
	bits         int
	exponentBits int
	signed       bool

	// derived, computed once at construction
	mantissaBits int
	signMask     Uint128
	exponentMask Uint128
	mantissaMask Uint128
	specialExp   Uint128
	hiddenBit    Uint128
	hiddenBitF   float64

	exponentBias   int
	subnormalCoeff float64
	maxValue       float64
	minValue       float64
}

// New creates a signed Codec with the given total and exponent bit widths.
//
// The layout dedicates one bit to the sign, exponentBits to the exponent
// and the remainder to the mantissa.
//
// Parameters:
//   - bits: total width of the encoded pattern, at most 128
//   - exponentBits: width of the exponent field, in [1, bits-1]
//
// Returns:
//   - *Codec: the constructed codec
//   - error: if the widths violate the constraints above
func New(bits, exponentBits int) (*Codec, error) {
	return newCodec(bits, exponentBits, true)
}

// NewUnsigned creates an unsigned Codec with the given total and exponent
// bit widths. The sign bit is omitted and its bit goes to the mantissa;
// negative inputs are encoded as if they were positive.
func NewUnsigned(bits, exponentBits int) (*Codec, error) {
	return newCodec(bits, exponentBits, false)
}

// MustNew is like New but panics on invalid widths. It is intended for
// package-level codec variables with constant configurations.
func MustNew(bits, exponentBits int) *Codec {
	c, err := New(bits, exponentBits)
	if err != nil {
		panic(err)
	}

	return c
}

// MustNewUnsigned is like NewUnsigned but panics on invalid widths.
func MustNewUnsigned(bits, exponentBits int) *Codec {
	c, err := NewUnsigned(bits, exponentBits)
	if err != nil {
		panic(err)
	}

	return c
}

func newCodec(bits, exponentBits int, signed bool) (*Codec, error) {
	if bits > MaxBits {
		return nil, fmt.Errorf("total width %d exceeds %d bits", bits, MaxBits)
	}
	if exponentBits < 1 || exponentBits >= bits {
		return nil, fmt.Errorf("exponent width %d must be in [1, %d] for a %d-bit codec", exponentBits, bits-1, bits)
	}

	mantissaBits := bits - exponentBits
	if signed {
		mantissaBits--
	}

	specialExp := mask128(exponentBits)
	hiddenBit := FromUint64(1).Shl(uint(mantissaBits))
	exponentBias := 1<<(exponentBits-1) - 1
	subnormalExp := 1 - exponentBias

	c := &Codec{
		bits:         bits,
		exponentBits: exponentBits,
		signed:       signed,

		mantissaBits: mantissaBits,
		exponentMask: specialExp.Shl(uint(mantissaBits)),
		mantissaMask: mask128(mantissaBits),
		specialExp:   specialExp,
		hiddenBit:    hiddenBit,
		hiddenBitF:   hiddenBit.Float64(),

		exponentBias:   exponentBias,
		subnormalCoeff: math.Pow(2, float64(subnormalExp)),
		maxValue:       math.Pow(2, math.Exp2(float64(exponentBits-1))),
		minValue:       math.Pow(2, float64(subnormalExp-mantissaBits)),
	}
	if signed {
		c.signMask = FromUint64(1).Shl(uint(bits - 1))
	}

	return c, nil
}

// Bits returns the total width of the encoded pattern.
func (c *Codec) Bits() int {
	return c.bits
}

// ExponentBits returns the width of the exponent field.
func (c *Codec) ExponentBits() int {
	return c.exponentBits
}

// MantissaBits returns the width of the mantissa field.
func (c *Codec) MantissaBits() int {
	return c.mantissaBits
}

// Signed reports whether the codec carries a sign bit.
func (c *Codec) Signed() bool {
	return c.signed
}

// MaxValue returns the magnitude above which all inputs encode as Infinity.
// This is not necessarily the largest finite representable value; it only
// guarantees that anything above it becomes Infinity.
func (c *Codec) MaxValue() float64 {
	return c.maxValue
}

// MinValue returns the smallest positive magnitude the codec can represent,
// the single-step subnormal. Inputs below it encode as positive zero.
func (c *Codec) MinValue() float64 {
	return c.minValue
}

// Encode converts a float64 value into its bit pattern under this codec's
// configuration.
//
// NaN and ±Infinity are accepted and map to the all-ones exponent field.
// Magnitudes above MaxValue encode as Infinity; magnitudes below MinValue
// encode as positive zero, dropping the sign even for negative inputs.
// Negative zero therefore normalizes to positive zero, consistent with the
// float model this imitates.
//
// Parameters:
//   - value: the value to encode
//
// Returns:
//   - Uint128: the encoded pattern, right-aligned in the low Bits() bits
func (c *Codec) Encode(value float64) Uint128 {
	isNaN := math.IsNaN(value)
	abs := math.Abs(value)

	// exp is -Inf for abs == 0 and NaN for NaN inputs; both comparisons
	// below behave as intended in those cases.
	exp := math.Floor(math.Log2(abs))
	isSubnormal := exp <= float64(-c.exponentBias)

	// The hardware layouts are bit-identical to this codec's output for
	// normal values, so reinterpret directly and avoid rounding drift.
	// The builtins do not share our NaN/subnormal handling, so those fall
	// through to the general path.
	if c.signed && !isNaN && !isSubnormal {
		switch {
		case c.bits == 32 && c.exponentBits == 8:
			return FromUint64(uint64(math.Float32bits(float32(value))))
		case c.bits == 64 && c.exponentBits == 11:
			return FromUint64(math.Float64bits(value))
		}
	}

	if abs < c.minValue {
		return Uint128{}
	}

	var sign Uint128
	if c.signed && value < 0 {
		sign = c.signMask
	}

	// The explicit IsInf matters when maxValue itself overflows float64 to
	// +Inf (exponent widths of 11 and up): Inf > Inf is false, so the
	// magnitude comparison alone would let an Infinity input fall through
	// to the normal-number branch.
	if isNaN || math.IsInf(value, 0) || abs > c.maxValue {
		out := c.exponentMask.Or(sign)
		if isNaN {
			out = out.Or(FromUint64(1))
		}

		return out
	}

	var exponent Uint128
	scale := c.subnormalCoeff
	if !isSubnormal {
		exponent = FromUint64(uint64(int(exp) + c.exponentBias)).Shl(uint(c.mantissaBits))
		scale = math.Pow(2, exp)
	}

	// abs/scale is in [1, 2) for normals; the hidden leading 1 is dropped
	// by the fractional expansion below.
	mantissa := inverseBinary(abs/scale, c.mantissaBits)

	return sign.Or(exponent).Or(mantissa)
}

// EncodeUint64 is a convenience for codecs of at most 64 bits; it returns
// the low 64 bits of the encoded pattern.
func (c *Codec) EncodeUint64(value float64) uint64 {
	return c.Encode(value).Uint64()
}

// Decode converts a bit pattern produced by Encode back into a float64.
//
// An all-ones exponent field decodes to ±Infinity when the mantissa is zero
// and NaN otherwise. A zero exponent field decodes as a subnormal with no
// hidden leading 1. The sign bit is ignored entirely for unsigned codecs.
//
// Parameters:
//   - pattern: the encoded pattern, right-aligned in the low Bits() bits
//
// Returns:
//   - float64: the decoded value
func (c *Codec) Decode(pattern Uint128) float64 {
	exponent := pattern.And(c.exponentMask).Shr(uint(c.mantissaBits))
	raw := pattern.And(c.mantissaMask).Float64() / c.hiddenBitF

	isSpecial := exponent == c.specialExp
	zeroMantissa := raw == 0
	isSubnormal := exponent.IsZero()

	if c.signed && !isSubnormal && (!isSpecial || !zeroMantissa) {
		switch {
		case c.bits == 32 && c.exponentBits == 8:
			return float64(math.Float32frombits(uint32(pattern.Lo)))
		case c.bits == 64 && c.exponentBits == 11:
			return math.Float64frombits(pattern.Lo)
		}
	}

	sign := 1.0
	if c.signed && !pattern.And(c.signMask).IsZero() {
		sign = -1.0
	}

	switch {
	case isSubnormal:
		return sign * c.subnormalCoeff * raw
	case isSpecial:
		if zeroMantissa {
			return sign * math.Inf(1)
		}

		return math.NaN()
	default:
		expVal := int(exponent.Uint64())

		return sign * math.Pow(2, float64(expVal-c.exponentBias)) * (1 + raw)
	}
}

// DecodeUint64 is a convenience for codecs of at most 64 bits.
func (c *Codec) DecodeUint64(pattern uint64) float64 {
	return c.Decode(FromUint64(pattern))
}

// inverseBinary returns the binary expansion of the fractional part of
// value as an unsigned integer spanning the given number of bits.
//
// For example, 0.75 is 0.11 in binary; inverseBinary(0.75, 3) returns 110,
// which is 6. The final bit rounds up when the remaining residue is at
// least lastBitRoundThreshold and truncates otherwise.
func inverseBinary(value float64, bits int) Uint128 {
	var res Uint128

	for b := bits - 1; b >= 0; b-- {
		value = math.Mod(value, 1) * 2

		if value >= 1 || (b == 0 && value >= lastBitRoundThreshold) {
			res = res.Or(FromUint64(1).Shl(uint(b)))
		}
	}

	return res
}
