package compress

import "fmt"

// Type identifies a compression algorithm in frame headers.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents no compression.
	TypeZstd Type = 0x2 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 represents LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t names a known codec.
func (t Type) IsValid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Compressor compresses a complete frame payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a frame payload compressed by the matching
// Compressor. Implementations must validate the input format and return an
// error for corrupted or incompatible data.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
