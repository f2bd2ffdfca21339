//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Frame payloads are at most a few KiB, so a mid-table level keeps encode
// latency in the per-tick budget while still beating LZ4 on ratio.
const zstdCgoLevel = 3

// Compress compresses a frame payload using the cgo Zstandard binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdCgoLevel), nil
}

// Decompress restores a Zstd-compressed frame payload.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
