package wire

import (
	"fmt"
	"math"

	"github.com/arloliu/bitstream/internal/hash"
	"github.com/arloliu/bitstream/stream"
)

// NameID maps a registry name, e.g. an obstacle or loot definition name, to
// a stable 64-bit identifier suitable for lookup tables shared between peers.
func NameID(name string) uint64 {
	return hash.ID(name)
}

// Stream wraps a stream.BitStream with game-specific field encoders. All of
// the underlying bit-level operations remain available through embedding.
type Stream struct {
	*stream.BitStream
}

// New creates a Stream backed by a fresh zeroed buffer of byteLength bytes.
func New(byteLength int, opts ...stream.Option) (*Stream, error) {
	s, err := stream.New(byteLength, opts...)
	if err != nil {
		return nil, err
	}

	return &Stream{BitStream: s}, nil
}

// FromBytes creates a Stream over a copy of data, positioned at index 0.
func FromBytes(data []byte, opts ...stream.Option) (*Stream, error) {
	s, err := stream.FromBytes(data, opts...)
	if err != nil {
		return nil, err
	}

	return &Stream{BitStream: s}, nil
}

func clamp(value, minVal, maxVal float64) float64 {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}

	return value
}

// WriteFloat quantizes value from the range [min, max] into an unsigned
// integer of the given bit width and writes it. Values outside the range are
// clamped. bits must be in [1, 31].
func (s *Stream) WriteFloat(value, minVal, maxVal float64, bits int) error {
	if bits < 1 || bits > 31 {
		return fmt.Errorf("quantized float width %d out of range [1, 31]: %w", bits, stream.ErrChunkTooWide)
	}

	scale := float64(uint32(1)<<bits - 1)
	unit := (clamp(value, minVal, maxVal) - minVal) / (maxVal - minVal)
	raw := uint32(math.Trunc(unit*scale + 0.5))

	return s.WriteBitsUnsigned(raw, bits)
}

// ReadFloat reads a quantized float written by WriteFloat with the same
// range and bit width.
func (s *Stream) ReadFloat(minVal, maxVal float64, bits int) (float64, error) {
	if bits < 1 || bits > 31 {
		return 0, fmt.Errorf("quantized float width %d out of range [1, 31]: %w", bits, stream.ErrChunkTooWide)
	}

	raw, err := s.ReadBits(bits)
	if err != nil {
		return 0, err
	}

	scale := float64(uint32(1)<<bits - 1)

	return minVal + (maxVal-minVal)*float64(raw)/scale, nil
}

// WriteVector writes both components of v as quantized floats sharing the
// same range and per-axis bit width.
func (s *Stream) WriteVector(v Vec2, minVal, maxVal float64, bits int) error {
	if err := s.WriteFloat(v.X, minVal, maxVal, bits); err != nil {
		return err
	}

	return s.WriteFloat(v.Y, minVal, maxVal, bits)
}

// ReadVector reads a vector written by WriteVector.
func (s *Stream) ReadVector(minVal, maxVal float64, bits int) (Vec2, error) {
	x, err := s.ReadFloat(minVal, maxVal, bits)
	if err != nil {
		return Vec2{}, err
	}
	y, err := s.ReadFloat(minVal, maxVal, bits)
	if err != nil {
		return Vec2{}, err
	}

	return Vec2{X: x, Y: y}, nil
}

// WritePosition writes a world position with 16 bits per axis over
// [0, MaxPosition], giving roughly 0.025 world units of precision.
func (s *Stream) WritePosition(v Vec2) error {
	return s.WriteVector(v, 0, MaxPosition, 16)
}

// ReadPosition reads a position written by WritePosition.
func (s *Stream) ReadPosition() (Vec2, error) {
	return s.ReadVector(0, MaxPosition, 16)
}

// WriteRotation writes an angle in radians quantized over [-Pi, Pi].
func (s *Stream) WriteRotation(value float64, bits int) error {
	return s.WriteFloat(value, -math.Pi, math.Pi, bits)
}

// ReadRotation reads an angle written by WriteRotation with the same width.
func (s *Stream) ReadRotation(bits int) (float64, error) {
	return s.ReadFloat(-math.Pi, math.Pi, bits)
}

// WriteScale writes an object scale quantized over
// [MinObjectScale, MaxObjectScale] in 8 bits.
func (s *Stream) WriteScale(value float64) error {
	return s.WriteFloat(value, MinObjectScale, MaxObjectScale, 8)
}

// ReadScale reads a scale written by WriteScale.
func (s *Stream) ReadScale() (float64, error) {
	return s.ReadFloat(MinObjectScale, MaxObjectScale, 8)
}

// WriteObjectID writes a game object identifier in ObjectIDBits bits.
func (s *Stream) WriteObjectID(id uint32) error {
	if id > MaxObjectID {
		return fmt.Errorf("object id %d exceeds %d: %w", id, MaxObjectID, stream.ErrIndexOutOfRange)
	}

	return s.WriteBitsUnsigned(id, ObjectIDBits)
}

// ReadObjectID reads an identifier written by WriteObjectID.
func (s *Stream) ReadObjectID() (uint32, error) {
	return s.ReadBits(ObjectIDBits)
}

// WriteObjectCategory writes an object category in ObjectCategoryBits bits.
func (s *Stream) WriteObjectCategory(category ObjectCategory) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid object category %d: %w", category, stream.ErrIndexOutOfRange)
	}

	return s.WriteBitsUnsigned(uint32(category), ObjectCategoryBits)
}

// ReadObjectCategory reads a category written by WriteObjectCategory.
func (s *Stream) ReadObjectCategory() (ObjectCategory, error) {
	raw, err := s.ReadBits(ObjectCategoryBits)
	if err != nil {
		return 0, err
	}

	category := ObjectCategory(raw)
	if !category.IsValid() {
		return 0, fmt.Errorf("invalid object category %d: %w", raw, stream.ErrIndexOutOfRange)
	}

	return category, nil
}

// WriteVariation writes an object variation index in VariationBits bits.
func (s *Stream) WriteVariation(variation uint8) error {
	return s.WriteBitsUnsigned(uint32(variation), VariationBits)
}

// ReadVariation reads a variation written by WriteVariation.
func (s *Stream) ReadVariation() (uint8, error) {
	raw, err := s.ReadBits(VariationBits)
	if err != nil {
		return 0, err
	}

	return uint8(raw), nil
}

// WritePlayerName writes name as a fixed PlayerNameMaxLength-byte ASCII
// field, truncating over-long names and zero-padding short ones.
func (s *Stream) WritePlayerName(name string) error {
	if len(name) > PlayerNameMaxLength {
		name = name[:PlayerNameMaxLength]
	}

	return s.WriteASCII(name, PlayerNameMaxLength)
}

// ReadPlayerName reads a name written by WritePlayerName. The fixed field is
// always fully consumed regardless of the name's actual length.
func (s *Stream) ReadPlayerName() (string, error) {
	return s.ReadASCII(PlayerNameMaxLength)
}

// WriteArray writes length as a lengthBits-wide prefix, then invokes write
// once per element. The callback is responsible for writing element i.
func (s *Stream) WriteArray(length int, lengthBits int, write func(i int) error) error {
	if length < 0 || uint64(length) > uint64(1)<<lengthBits-1 {
		return fmt.Errorf("array length %d does not fit in %d bits: %w", length, lengthBits, stream.ErrIndexOutOfRange)
	}

	if err := s.WriteBitsUnsigned(uint32(length), lengthBits); err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		if err := write(i); err != nil {
			return err
		}
	}

	return nil
}

// ReadArray reads a length prefix written by WriteArray, then invokes read
// once per element.
func (s *Stream) ReadArray(lengthBits int, read func(i int) error) error {
	length, err := s.ReadBits(lengthBits)
	if err != nil {
		return err
	}
	for i := 0; i < int(length); i++ {
		if err := read(i); err != nil {
			return err
		}
	}

	return nil
}
