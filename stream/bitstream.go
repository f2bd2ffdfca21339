package stream

import (
	"fmt"

	"github.com/arloliu/bitstream/internal/options"
)

// Stream is the minimal contract every bit cursor satisfies. It exposes
// only the raw primitives and index accessors; the typed convenience
// surface (integers, floats, strings) is built entirely on top of these,
// so wrapper types that embed a *BitStream inherit the whole surface.
type Stream interface {
	ByteLength() int
	Index() int
	Endianness() Endianness
	BitsLeft() int
	SetIndex(bits int) error

	ReadBits(bits int) (uint32, error)
	ReadBitsSigned(bits int) (int32, error)
	WriteBits(value int32, bits int) error
	WriteBitsUnsigned(value uint32, bits int) error
	Slice(start, end int) (*BitStream, error)
}

// BitStream is a bit cursor over a fixed-size byte buffer.
//
// The buffer is exclusively owned: nothing aliases it, and Slice deep-copies
// its range into a new independent BitStream. Reads and writes share a
// single index that advances monotonically; use SetIndex to reposition.
type BitStream struct {
	buf        []byte
	byteLength int
	endianness Endianness
	index      int // in bits
}

var _ Stream = (*BitStream)(nil)

// Option configures a BitStream during construction.
type Option = options.Option[*BitStream]

// WithEndianness sets the stream's intra-byte bit ordering.
func WithEndianness(e Endianness) Option {
	return options.NoError(func(s *BitStream) {
		s.endianness = e
	})
}

// WithLittleEndian sets the stream to little-endian bit ordering.
// This is the default and rarely needs to be spelled out.
func WithLittleEndian() Option {
	return WithEndianness(LittleEndian)
}

// WithBigEndian sets the stream to big-endian bit ordering.
func WithBigEndian() Option {
	return WithEndianness(BigEndian)
}

// New creates a BitStream over a zero-filled buffer of byteLength bytes,
// with the index at 0 and little-endian bit ordering unless an option says
// otherwise.
//
// Parameters:
//   - byteLength: buffer size in bytes; must not be negative
//   - opts: optional configuration (WithBigEndian, WithEndianness, ...)
//
// Returns:
//   - *BitStream: the created stream
//   - error: if byteLength is negative or an option fails
func New(byteLength int, opts ...Option) (*BitStream, error) {
	if byteLength < 0 {
		return nil, fmt.Errorf("negative byte length %d", byteLength)
	}

	s := &BitStream{
		buf:        make([]byte, byteLength),
		byteLength: byteLength,
		endianness: LittleEndian,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// FromBytes creates a BitStream over a private copy of data with the index
// at 0. The input slice is not retained.
func FromBytes(data []byte, opts ...Option) (*BitStream, error) {
	s, err := New(len(data), opts...)
	if err != nil {
		return nil, err
	}
	copy(s.buf, data)

	return s, nil
}

// ByteLength returns the size of the stream's buffer in bytes.
func (s *BitStream) ByteLength() int {
	return s.byteLength
}

// Index returns the stream's current position, in bits.
func (s *BitStream) Index() int {
	return s.index
}

// SetIndex repositions the stream to the given bit offset.
// Positions at or past byteLength*8 are rejected.
func (s *BitStream) SetIndex(bits int) error {
	if bits < 0 || bits >= s.byteLength*8 {
		return fmt.Errorf("cannot set index to %d in a %d-bit stream: %w", bits, s.byteLength*8, ErrIndexOutOfRange)
	}
	s.index = bits

	return nil
}

// Endianness returns the stream's intra-byte bit ordering.
func (s *BitStream) Endianness() Endianness {
	return s.endianness
}

// SetEndianness changes the bit ordering for subsequent operations.
// Bytes already written are not transformed retroactively.
func (s *BitStream) SetEndianness(e Endianness) {
	s.endianness = e
}

// BitsLeft returns how many bits remain between the index and the end of
// the buffer.
func (s *BitStream) BitsLeft() int {
	return s.byteLength*8 - s.index
}

// Bytes returns the stream's backing buffer. The caller must not modify the
// returned slice; use Slice or FromBytes for an independent copy.
func (s *BitStream) Bytes() []byte {
	return s.buf
}

// ReadBits reads the next bits bits and returns them as an unsigned value,
// advancing the index. bits must be in the 1..32 range.
//
// Bytes are consumed one at a time. Under little-endian ordering the first
// byte read lands in the least-significant bits of the result; under
// big-endian ordering it lands in the most-significant bits.
//
// Returns ErrChunkTooWide if bits is outside 1..32 and ErrEndOfStream if
// fewer than bits bits remain; neither error moves the index.
func (s *BitStream) ReadBits(bits int) (uint32, error) {
	if bits < 1 || bits > 32 {
		return 0, fmt.Errorf("cannot read %d bits: %w", bits, ErrChunkTooWide)
	}
	if available := s.BitsLeft(); bits > available {
		return 0, fmt.Errorf("cannot get %d bits from offset %d, %d available: %w", bits, s.index, available, ErrEndOfStream)
	}

	var value uint32
	i := 0

	for i < bits {
		remaining := bits - i
		bitOffset := s.index & 7
		current := uint32(s.buf[s.index>>3])

		// how many bits can be read from the current byte
		toRead := min(remaining, 8-bitOffset)
		mask := uint32(1)<<toRead - 1

		if s.endianness == BigEndian {
			chunk := (current >> (8 - toRead - bitOffset)) & mask
			value = value<<toRead | chunk
		} else {
			chunk := (current >> bitOffset) & mask
			value |= chunk << i
		}

		s.index += toRead
		i += toRead
	}

	return value, nil
}

// ReadBitsSigned reads the next bits bits and sign-extends them into a
// signed 32-bit integer. When working with 32 bits, 1111 is 15, but when
// working with 4 bits it is -1.
func (s *BitStream) ReadBitsSigned(bits int) (int32, error) {
	value, err := s.ReadBits(bits)
	if err != nil {
		return 0, err
	}

	if bits != 32 && value&(uint32(1)<<(bits-1)) != 0 {
		value |= ^(uint32(1)<<bits - 1)
	}

	return int32(value), nil
}

// WriteBits writes the low bits bits of a signed value; the bit pattern is
// reinterpreted as unsigned.
func (s *BitStream) WriteBits(value int32, bits int) error {
	return s.WriteBitsUnsigned(uint32(value), bits)
}

// WriteBitsUnsigned writes the low bits bits of value, advancing the
// index. bits must be in the 1..32 range.
//
// For each touched byte the destination bits are cleared with a complement
// mask and the source chunk OR'd in at the correct intra-byte position.
// Under little-endian ordering chunks are taken from the low end of the
// value; under big-endian ordering from the high end.
//
// Returns ErrChunkTooWide if bits is outside 1..32 and ErrEndOfStream if
// fewer than bits bits remain; neither error moves the index or touches
// the buffer.
func (s *BitStream) WriteBitsUnsigned(value uint32, bits int) error {
	if bits < 1 || bits > 32 {
		return fmt.Errorf("cannot write %d bits: %w", bits, ErrChunkTooWide)
	}
	if available := s.BitsLeft(); bits > available {
		return fmt.Errorf("cannot set %d bits from offset %d, %d available: %w", bits, s.index, available, ErrEndOfStream)
	}

	i := 0
	for i < bits {
		remaining := bits - i
		bitOffset := s.index & 7
		byteOffset := s.index >> 3

		// how many bits can be written to the current byte
		toWrite := min(remaining, 8-bitOffset)
		mask := uint32(1)<<toWrite - 1

		if s.endianness == BigEndian {
			chunk := (value >> (remaining - toWrite)) & mask
			destShift := 8 - bitOffset - toWrite
			destMask := ^(byte(mask) << destShift)
			s.buf[byteOffset] = s.buf[byteOffset]&destMask | byte(chunk)<<destShift
		} else {
			chunk := value & mask
			value >>= toWrite
			destMask := ^(byte(mask) << bitOffset)
			s.buf[byteOffset] = s.buf[byteOffset]&destMask | byte(chunk)<<bitOffset
		}

		s.index += toWrite
		i += toWrite
	}

	return nil
}

// Slice copies the byte range [start, end) into a new independent
// BitStream with its index at 0 and the source's endianness. Negative
// indices count backwards from the end of the buffer, ArrayBuffer style.
// Mutating either stream afterwards never affects the other.
func (s *BitStream) Slice(start, end int) (*BitStream, error) {
	if start < 0 {
		start += s.byteLength
	}
	if end < 0 {
		end += s.byteLength
	}

	if start < 0 || end > s.byteLength || start > end {
		return nil, fmt.Errorf("slice [%d, %d) of a %d-byte stream: %w", start, end, s.byteLength, ErrSliceBounds)
	}

	out := &BitStream{
		buf:        make([]byte, end-start),
		byteLength: end - start,
		endianness: s.endianness,
	}
	copy(out.buf, s.buf[start:end])

	return out, nil
}

// PadToNextByte writes zero bits up to the next byte boundary. It does
// nothing when the index is already aligned.
func (s *BitStream) PadToNextByte() error {
	offset := 8 - s.index&7
	if offset < 8 {
		return s.WriteBitsUnsigned(0, offset)
	}

	return nil
}

// SkipToNextByte consumes bits up to the next byte boundary. It does
// nothing when the index is already aligned.
func (s *BitStream) SkipToNextByte() error {
	offset := 8 - s.index&7
	if offset < 8 {
		_, err := s.ReadBits(offset)
		return err
	}

	return nil
}
