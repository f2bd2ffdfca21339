package stream

import "errors"

var (
	// ErrChunkTooWide is returned when a raw read or write requests a bit
	// width outside the 1..32 range a single call supports.
	ErrChunkTooWide = errors.New("bit chunk exceeds 32 bits")

	// ErrEndOfStream is returned when an operation needs more bits than
	// remain between the index and the end of the buffer.
	ErrEndOfStream = errors.New("end of stream")

	// ErrIndexOutOfRange is returned by SetIndex for positions outside the
	// buffer.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSliceBounds is returned by Slice when the normalized range is
	// outside the buffer or inverted.
	ErrSliceBounds = errors.New("invalid slice bounds")

	// ErrNonASCII is returned by the ASCII string codec when the text
	// contains bytes outside the ASCII range.
	ErrNonASCII = errors.New("string is not ASCII-only")

	// ErrInvalidUTF8 is returned when decoded string bytes do not form a
	// valid UTF-8 sequence.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
)
