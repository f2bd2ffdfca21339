// Package bitstream provides bit-granular binary serialization for
// bandwidth-sensitive protocols, built around three layers:
//
//   - stream: a bit cursor over a fixed-size buffer with configurable
//     intra-byte endianness, plus typed integer, float and string codecs.
//   - decimal: configurable-precision IEEE-754 style float encoding at any
//     total width up to 128 bits with any exponent width.
//   - wire: game-protocol field encoders (quantized floats, vectors, object
//     identifiers) and a checksummed, optionally compressed frame format.
//
// Typical usage starts here with New or FromBytes and drops down to the
// sub-packages for anything this facade does not cover:
//
//	s, err := bitstream.New(64)
//	if err != nil {
//		return err
//	}
//	_ = s.WriteBool(true)
//	_ = s.WriteUFloat16(runSpeed)
//	_ = s.WriteASCII(name, 16)
package bitstream

import (
	"github.com/arloliu/bitstream/decimal"
	"github.com/arloliu/bitstream/stream"
)

// Endianness re-exports so callers of the facade do not need to import the
// stream package for construction options.
const (
	LittleEndian = stream.LittleEndian
	BigEndian    = stream.BigEndian
)

// New creates a bit stream over a zero-filled buffer of byteLength bytes.
func New(byteLength int, opts ...stream.Option) (*stream.BitStream, error) {
	return stream.New(byteLength, opts...)
}

// FromBytes creates a bit stream over a private copy of data.
func FromBytes(data []byte, opts ...stream.Option) (*stream.BitStream, error) {
	return stream.FromBytes(data, opts...)
}

// WithEndianness sets a stream's intra-byte bit ordering at construction.
func WithEndianness(e stream.Endianness) stream.Option {
	return stream.WithEndianness(e)
}

// NewDecimalCodec creates a signed configurable-precision float codec with
// the given total and exponent widths.
func NewDecimalCodec(bits, exponentBits int) (*decimal.Codec, error) {
	return decimal.New(bits, exponentBits)
}

// NewUnsignedDecimalCodec creates an unsigned configurable-precision float
// codec; the sign bit's position is given to the mantissa instead.
func NewUnsignedDecimalCodec(bits, exponentBits int) (*decimal.Codec, error) {
	return decimal.NewUnsigned(bits, exponentBits)
}
