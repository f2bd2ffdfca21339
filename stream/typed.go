package stream

import (
	"fmt"

	"github.com/arloliu/bitstream/decimal"
)

// Typed integer and boolean operations. Everything here is expressed purely
// in terms of the raw ReadBits/WriteBitsUnsigned primitives; 64- and
// 128-bit values are split into 32-bit chunks with the least-significant
// chunk on the wire first.

// WriteBool writes a boolean as a single bit.
func (s *BitStream) WriteBool(value bool) error {
	var v uint32
	if value {
		v = 1
	}

	return s.WriteBitsUnsigned(v, 1)
}

// ReadBool reads a single bit as a boolean.
func (s *BitStream) ReadBool() (bool, error) {
	v, err := s.ReadBits(1)
	if err != nil {
		return false, err
	}

	return v == 1, nil
}

// WriteInt4 writes the low 4 bits of a signed value.
func (s *BitStream) WriteInt4(value int8) error {
	return s.WriteBitsUnsigned(uint32(value)&0b1111, 4)
}

// ReadInt4 reads a sign-extended 4-bit integer.
func (s *BitStream) ReadInt4() (int8, error) {
	v, err := s.ReadBitsSigned(4)
	if err != nil {
		return 0, err
	}

	return int8(v), nil
}

// WriteUint4 writes the low 4 bits of an unsigned value.
func (s *BitStream) WriteUint4(value uint8) error {
	return s.WriteBitsUnsigned(uint32(value)&0b1111, 4)
}

// ReadUint4 reads a 4-bit unsigned integer.
func (s *BitStream) ReadUint4() (uint8, error) {
	v, err := s.ReadBits(4)
	if err != nil {
		return 0, err
	}

	return uint8(v), nil
}

// WriteInt8 writes an 8-bit signed integer.
func (s *BitStream) WriteInt8(value int8) error {
	return s.WriteBitsUnsigned(uint32(value)&0xFF, 8)
}

// ReadInt8 reads an 8-bit signed integer.
func (s *BitStream) ReadInt8() (int8, error) {
	v, err := s.ReadBitsSigned(8)
	if err != nil {
		return 0, err
	}

	return int8(v), nil
}

// WriteUint8 writes an 8-bit unsigned integer.
func (s *BitStream) WriteUint8(value uint8) error {
	return s.WriteBitsUnsigned(uint32(value), 8)
}

// ReadUint8 reads an 8-bit unsigned integer.
func (s *BitStream) ReadUint8() (uint8, error) {
	v, err := s.ReadBits(8)
	if err != nil {
		return 0, err
	}

	return uint8(v), nil
}

// WriteInt16 writes a 16-bit signed integer.
func (s *BitStream) WriteInt16(value int16) error {
	return s.WriteBitsUnsigned(uint32(value)&0xFFFF, 16)
}

// ReadInt16 reads a 16-bit signed integer.
func (s *BitStream) ReadInt16() (int16, error) {
	v, err := s.ReadBitsSigned(16)
	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

// WriteUint16 writes a 16-bit unsigned integer.
func (s *BitStream) WriteUint16(value uint16) error {
	return s.WriteBitsUnsigned(uint32(value), 16)
}

// ReadUint16 reads a 16-bit unsigned integer.
func (s *BitStream) ReadUint16() (uint16, error) {
	v, err := s.ReadBits(16)
	if err != nil {
		return 0, err
	}

	return uint16(v), nil
}

// WriteInt32 writes a 32-bit signed integer.
func (s *BitStream) WriteInt32(value int32) error {
	return s.WriteUint32(uint32(value))
}

// ReadInt32 reads a 32-bit signed integer.
func (s *BitStream) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// WriteUint32 writes a 32-bit unsigned integer.
func (s *BitStream) WriteUint32(value uint32) error {
	return s.WriteBitsUnsigned(value, 32)
}

// ReadUint32 reads a 32-bit unsigned integer.
func (s *BitStream) ReadUint32() (uint32, error) {
	return s.ReadBits(32)
}

// WriteInt64 writes a 64-bit signed integer.
func (s *BitStream) WriteInt64(value int64) error {
	return s.WriteUint64(uint64(value))
}

// ReadInt64 reads a 64-bit signed integer.
func (s *BitStream) ReadInt64() (int64, error) {
	v, err := s.ReadUint64()
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// WriteUint64 writes a 64-bit unsigned integer as two 32-bit chunks,
// least-significant chunk first.
func (s *BitStream) WriteUint64(value uint64) error {
	if err := s.WriteBitsUnsigned(uint32(value), 32); err != nil {
		return err
	}

	return s.WriteBitsUnsigned(uint32(value>>32), 32)
}

// ReadUint64 reads a 64-bit unsigned integer written by WriteUint64.
func (s *BitStream) ReadUint64() (uint64, error) {
	lo, err := s.ReadBits(32)
	if err != nil {
		return 0, err
	}
	hi, err := s.ReadBits(32)
	if err != nil {
		return 0, err
	}

	return uint64(lo) | uint64(hi)<<32, nil
}

// WriteUint128 writes a 128-bit unsigned integer as four 32-bit chunks,
// least-significant chunk first. Signed 128-bit values share the same
// two's-complement bit pattern, so no separate signed variant exists.
func (s *BitStream) WriteUint128(value decimal.Uint128) error {
	if err := s.WriteBitsUnsigned(uint32(value.Lo), 32); err != nil {
		return err
	}
	if err := s.WriteBitsUnsigned(uint32(value.Lo>>32), 32); err != nil {
		return err
	}
	if err := s.WriteBitsUnsigned(uint32(value.Hi), 32); err != nil {
		return err
	}

	return s.WriteBitsUnsigned(uint32(value.Hi>>32), 32)
}

// ReadUint128 reads a 128-bit unsigned integer written by WriteUint128.
func (s *BitStream) ReadUint128() (decimal.Uint128, error) {
	var chunks [4]uint64
	for i := range chunks {
		v, err := s.ReadBits(32)
		if err != nil {
			return decimal.Uint128{}, err
		}
		chunks[i] = uint64(v)
	}

	return decimal.Uint128{
		Lo: chunks[0] | chunks[1]<<32,
		Hi: chunks[2] | chunks[3]<<32,
	}, nil
}

// WriteStream copies bits bits from src into s, consuming them from src, in
// chunks of at most 32 bits. A negative bits copies everything left in src.
//
// Partial progress before a failure is not rolled back on either stream.
func (s *BitStream) WriteStream(src *BitStream, bits int) error {
	if bits < 0 {
		bits = src.BitsLeft()
	}

	for bits > 0 {
		chunk := min(bits, 32)
		v, err := src.ReadBits(chunk)
		if err != nil {
			return err
		}
		if err := s.WriteBitsUnsigned(v, chunk); err != nil {
			return err
		}
		bits -= chunk
	}

	return nil
}

// ReadStream consumes the next bits bits and returns them as a new
// independent BitStream with its index at 0 and the source's endianness.
// The final partial byte, if any, is zero-padded.
func (s *BitStream) ReadStream(bits int) (*BitStream, error) {
	if bits < 0 || bits > s.BitsLeft() {
		return nil, fmt.Errorf("cannot read a %d-bit sub-stream from offset %d, %d available: %w", bits, s.index, s.BitsLeft(), ErrEndOfStream)
	}

	out, err := New((bits+7)/8, WithEndianness(s.endianness))
	if err != nil {
		return nil, err
	}

	for remaining := bits; remaining > 0; {
		chunk := min(remaining, 32)
		v, err := s.ReadBits(chunk)
		if err != nil {
			return nil, err
		}
		if err := out.WriteBitsUnsigned(v, chunk); err != nil {
			return nil, err
		}
		remaining -= chunk
	}
	out.index = 0

	return out, nil
}
