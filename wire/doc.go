// Package wire builds on package stream to provide the higher-level encoders
// a game netcode layer needs: quantized floats mapped onto fixed ranges,
// 2D vectors, object identifiers, fixed-width player names, and length-prefixed
// arrays.
//
// It also provides a frame codec that wraps a finished bit stream with a
// versioned header, an optional compression pass and an xxHash checksum, so
// payloads can be validated before a single bit is parsed.
//
// All quantized encodings are lossy by construction. The round-trip error of
// a value encoded with WriteFloat is bounded by half a quantization step,
// (max-min) / (2^bits - 1) / 2.
package wire
