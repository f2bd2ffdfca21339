// Package decimal implements a configurable-precision IEEE-754 style codec
// for floating-point numbers.
//
// Unlike the fixed 32/64-bit layouts provided by the hardware, a Codec can
// partition an arbitrary total bit width (up to 128) into a sign bit, an
// exponent field of arbitrary width, and a mantissa. This makes it possible
// to serialize real numbers at exactly the precision a wire format needs:
// an 8-bit quarter float for a normalized health value, a 16-bit half float
// for a velocity, and so on.
//
// # Choosing an exponent width
//
// The exponent width trades range for density. The number of distinct bit
// chains never changes, but their mapping onto the real line does: wide
// exponents bunch encodings up around zero and stretch them out to very
// large magnitudes, losing precision quickly, while narrow exponents cover
// a small interval densely. As an extreme example, an 8-bit codec with 6
// exponent bits cannot represent 5 exactly, yet represents both
// 4.656612873077393e-10 and 3221225472.
//
// # Unsigned codecs
//
// A codec built with NewUnsigned drops the sign bit and gives that bit to
// the mantissa, doubling precision over the positive range. Negative inputs
// are not underflowed or rejected; their sign is simply ignored, so an
// unsigned codec treats -3.2 exactly as it treats 3.2.
//
// # Standard layouts
//
// When a signed codec matches the native single (32 bits, 8 exponent) or
// double (64 bits, 11 exponent) layout, Encode and Decode reinterpret the
// hardware representation directly for normal values, guaranteeing
// bit-exact round trips with no cumulative rounding error.
package decimal
