// Package compress provides the payload compression codecs used by the
// wire frame format.
//
// Packet payloads produced by the bit stream are small (a few hundred
// bytes to a few KiB) and often repetitive, so every codec here is tuned
// for many small, short-lived payloads rather than bulk archival: encoders
// and decoders are pooled and reused, and empty inputs short-circuit.
//
// Four codecs are available: None (pass-through), Zstd (best ratio), S2
// (fastest), and LZ4 (balanced block compression).
package compress
