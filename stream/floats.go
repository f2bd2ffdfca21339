package stream

import "github.com/arloliu/bitstream/decimal"

// Shared codecs for the four standard wire precisions. Unsigned variants
// drop the sign bit and gain one mantissa bit at the same total width.
var (
	float8Codec   = decimal.MustNew(8, 3)
	ufloat8Codec  = decimal.MustNewUnsigned(8, 3)
	float16Codec  = decimal.MustNew(16, 5)
	ufloat16Codec = decimal.MustNewUnsigned(16, 5)
	float32Codec  = decimal.MustNew(32, 8)
	ufloat32Codec = decimal.MustNewUnsigned(32, 8)
	float64Codec  = decimal.MustNew(64, 11)
	ufloat64Codec = decimal.MustNewUnsigned(64, 11)
)

// WriteFloat8 writes a quarter-precision (8-bit, 3 exponent bits) signed float.
func (s *BitStream) WriteFloat8(value float64) error {
	return s.WriteUint8(uint8(float8Codec.EncodeUint64(value)))
}

// ReadFloat8 reads a quarter-precision signed float.
func (s *BitStream) ReadFloat8() (float32, error) {
	v, err := s.ReadUint8()
	if err != nil {
		return 0, err
	}

	return float32(float8Codec.DecodeUint64(uint64(v))), nil
}

// WriteUFloat8 writes a quarter-precision unsigned float. The sign of a
// negative value is ignored.
func (s *BitStream) WriteUFloat8(value float64) error {
	return s.WriteUint8(uint8(ufloat8Codec.EncodeUint64(value)))
}

// ReadUFloat8 reads a quarter-precision unsigned float.
func (s *BitStream) ReadUFloat8() (float32, error) {
	v, err := s.ReadUint8()
	if err != nil {
		return 0, err
	}

	return float32(ufloat8Codec.DecodeUint64(uint64(v))), nil
}

// WriteFloat16 writes a half-precision (16-bit, 5 exponent bits) signed float.
func (s *BitStream) WriteFloat16(value float64) error {
	return s.WriteUint16(uint16(float16Codec.EncodeUint64(value)))
}

// ReadFloat16 reads a half-precision signed float.
func (s *BitStream) ReadFloat16() (float32, error) {
	v, err := s.ReadUint16()
	if err != nil {
		return 0, err
	}

	return float32(float16Codec.DecodeUint64(uint64(v))), nil
}

// WriteUFloat16 writes a half-precision unsigned float.
func (s *BitStream) WriteUFloat16(value float64) error {
	return s.WriteUint16(uint16(ufloat16Codec.EncodeUint64(value)))
}

// ReadUFloat16 reads a half-precision unsigned float.
func (s *BitStream) ReadUFloat16() (float32, error) {
	v, err := s.ReadUint16()
	if err != nil {
		return 0, err
	}

	return float32(ufloat16Codec.DecodeUint64(uint64(v))), nil
}

// WriteFloat32 writes a single-precision (32-bit, 8 exponent bits) signed
// float. For normal values this is bit-identical to the native float32
// representation.
func (s *BitStream) WriteFloat32(value float64) error {
	return s.WriteUint32(uint32(float32Codec.EncodeUint64(value)))
}

// ReadFloat32 reads a single-precision signed float.
func (s *BitStream) ReadFloat32() (float32, error) {
	v, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}

	return float32(float32Codec.DecodeUint64(uint64(v))), nil
}

// WriteUFloat32 writes a single-precision unsigned float.
func (s *BitStream) WriteUFloat32(value float64) error {
	return s.WriteUint32(uint32(ufloat32Codec.EncodeUint64(value)))
}

// ReadUFloat32 reads a single-precision unsigned float.
func (s *BitStream) ReadUFloat32() (float32, error) {
	v, err := s.ReadUint32()
	if err != nil {
		return 0, err
	}

	return float32(ufloat32Codec.DecodeUint64(uint64(v))), nil
}

// WriteFloat64 writes a double-precision (64-bit, 11 exponent bits) signed
// float. For normal values this is bit-identical to the native float64
// representation.
func (s *BitStream) WriteFloat64(value float64) error {
	return s.WriteUint64(float64Codec.EncodeUint64(value))
}

// ReadFloat64 reads a double-precision signed float.
func (s *BitStream) ReadFloat64() (float64, error) {
	v, err := s.ReadUint64()
	if err != nil {
		return 0, err
	}

	return float64Codec.DecodeUint64(v), nil
}

// WriteUFloat64 writes a double-precision unsigned float.
func (s *BitStream) WriteUFloat64(value float64) error {
	return s.WriteUint64(ufloat64Codec.EncodeUint64(value))
}

// ReadUFloat64 reads a double-precision unsigned float.
func (s *BitStream) ReadUFloat64() (float64, error) {
	v, err := s.ReadUint64()
	if err != nil {
		return 0, err
	}

	return ufloat64Codec.DecodeUint64(v), nil
}
