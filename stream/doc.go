// Package stream implements a readable and writable bit cursor over a
// fixed-size byte buffer.
//
// A BitStream owns its buffer exclusively and tracks a single bit-granular
// index that advances with every read and write. Values are packed at
// arbitrary bit offsets with no implicit byte alignment; raw operations
// move at most 32 bits per call, and every wider operation (64/128-bit
// integers, configurable-precision floats, strings, nested streams) is
// composed from those primitives so the bit-packing logic lives in exactly
// one place.
//
// # Endianness
//
// The stream's endianness selects which end of a byte fills first when a
// value spans partial bytes. Under the default LittleEndian, the first bits
// written occupy the low-order bits of the value; BigEndian reverses this.
// This is intra-byte bit ordering only: the byte order of 64- and 128-bit
// integers is fixed by the wire format (least-significant 32-bit chunk
// first) and is unaffected by the endianness setting.
//
// # Errors
//
// Every operation that can run past the buffer, exceed the 32-bit chunk
// limit, or decode malformed text returns an error instead of panicking, so
// callers handling externally supplied buffers can reject corrupt input
// gracefully. Failures are immediate and are not retried; a failed
// multi-part operation leaves any bits already written in place and the
// index where the failure occurred.
//
// # Concurrency
//
// A BitStream is not safe for concurrent use. It is designed to be owned
// and mutated by exactly one goroutine at a time, typically one stream per
// message.
package stream
