package compress

// ZstdCompressor provides Zstandard compression for frame payloads.
//
// Zstd offers the best compression ratio of the available codecs and is the
// right choice when bandwidth matters more than encode latency, e.g. full
// game-state snapshots sent on join. Two implementations exist behind build
// tags: a cgo binding when cgo is available, and a pure-Go fallback.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
