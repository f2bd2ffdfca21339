package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/arloliu/bitstream/compress"
	"github.com/arloliu/bitstream/internal/hash"
	"github.com/arloliu/bitstream/internal/options"
	"github.com/arloliu/bitstream/internal/pool"
	"github.com/arloliu/bitstream/stream"
)

// Frame layout, all multi-byte fields little-endian:
//
//	offset  size  field
//	0       1     protocol version
//	1       1     compression type
//	2       8     xxHash64 checksum of the (compressed) payload
//	10      4     payload length in bytes
//	14      ...   payload
const frameHeaderSize = 14

var (
	// ErrFrameTooShort indicates the input ends before the header or payload does.
	ErrFrameTooShort = errors.New("frame too short")
	// ErrVersionMismatch indicates the frame was produced by an incompatible
	// protocol version.
	ErrVersionMismatch = errors.New("protocol version mismatch")
	// ErrChecksumMismatch indicates the payload checksum did not verify.
	ErrChecksumMismatch = errors.New("frame checksum mismatch")
)

// FrameOption configures a FrameEncoder.
type FrameOption = options.Option[*FrameEncoder]

// WithCompression selects the compression codec applied to frame payloads.
// The default is TypeNone.
func WithCompression(compressionType compress.Type) FrameOption {
	return options.New(func(e *FrameEncoder) error {
		if !compressionType.IsValid() {
			return fmt.Errorf("unsupported compression type: %d", compressionType)
		}
		e.compression = compressionType

		return nil
	})
}

// FrameEncoder wraps finished bit streams into checksummed, optionally
// compressed frames. It holds a pooled scratch buffer, so a single encoder
// must not be shared across goroutines.
type FrameEncoder struct {
	compression compress.Type
	codec       compress.Codec
	buf         *pool.ByteBuffer
}

// NewFrameEncoder creates a FrameEncoder with the given options.
func NewFrameEncoder(opts ...FrameOption) (*FrameEncoder, error) {
	encoder := &FrameEncoder{compression: compress.TypeNone}
	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(encoder.compression)
	if err != nil {
		return nil, err
	}
	encoder.codec = codec
	encoder.buf = pool.GetFrameBuffer()

	return encoder, nil
}

// Encode frames the full buffer of s. The returned slice aliases the
// encoder's scratch buffer and remains valid only until the next call to
// Encode or Finish; callers that retain frames must copy them.
func (e *FrameEncoder) Encode(s *stream.BitStream) ([]byte, error) {
	payload, err := e.codec.Compress(s.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress frame payload: %w", err)
	}

	e.buf.Reset()
	e.buf.Grow(frameHeaderSize + len(payload))

	var header [frameHeaderSize]byte
	header[0] = ProtocolVersion
	header[1] = byte(e.compression)
	binary.LittleEndian.PutUint64(header[2:10], hash.Sum64(payload))
	binary.LittleEndian.PutUint32(header[10:14], uint32(len(payload)))

	e.buf.MustWrite(header[:])
	e.buf.MustWrite(payload)

	return e.buf.Bytes(), nil
}

// Finish returns the encoder's scratch buffer to the pool. The encoder must
// not be used afterwards.
func (e *FrameEncoder) Finish() {
	pool.PutFrameBuffer(e.buf)
	e.buf = nil
}

// DecodeFrame validates a frame produced by FrameEncoder.Encode and returns
// a stream positioned at the start of the decoded payload.
func DecodeFrame(data []byte, opts ...stream.Option) (*stream.BitStream, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("frame header needs %d bytes, got %d: %w", frameHeaderSize, len(data), ErrFrameTooShort)
	}

	if data[0] != ProtocolVersion {
		return nil, fmt.Errorf("got version %d, want %d: %w", data[0], ProtocolVersion, ErrVersionMismatch)
	}

	compression := compress.Type(data[1])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	checksum := binary.LittleEndian.Uint64(data[2:10])
	payloadLen := int(binary.LittleEndian.Uint32(data[10:14]))

	payload := data[frameHeaderSize:]
	if len(payload) < payloadLen {
		return nil, fmt.Errorf("frame payload needs %d bytes, got %d: %w", payloadLen, len(payload), ErrFrameTooShort)
	}
	payload = payload[:payloadLen]

	if hash.Sum64(payload) != checksum {
		return nil, ErrChecksumMismatch
	}

	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress frame payload: %w", err)
	}

	return stream.FromBytes(decompressed, opts...)
}
