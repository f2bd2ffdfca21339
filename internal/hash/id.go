package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 checksum of the given payload.
// Frame codecs use it to detect corrupted or truncated packets.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string.
// It converts human-readable definition names into fixed-size wire identifiers.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
