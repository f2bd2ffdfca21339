package stream

import (
	"fmt"
	"unicode/utf8"
)

// String codecs layered on the byte-level primitives.
//
// Two length policies exist. With byteCount <= 0 the writer emits the
// string's bytes followed by a single null terminator and the reader stops
// consuming at the first null. With a positive byteCount the writer emits
// exactly byteCount bytes, null-padding (or truncating) as needed, and the
// reader always consumes the full declared length while only appending
// bytes seen before the first null. Readers must use the same policy as the
// writer to round-trip correctly.

// WriteASCII writes an ASCII string under the given length policy.
// Returns ErrNonASCII if the string contains bytes outside the ASCII range.
func (s *BitStream) WriteASCII(text string, byteCount int) error {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return fmt.Errorf("cannot write %q: %w", text, ErrNonASCII)
		}
	}

	return s.writeStringBytes([]byte(text), byteCount)
}

// ReadASCII reads a string written by WriteASCII with the same byteCount.
// Returns ErrNonASCII if the decoded bytes are not ASCII.
func (s *BitStream) ReadASCII(byteCount int) (string, error) {
	raw, err := s.readStringBytes(byteCount)
	if err != nil {
		return "", err
	}
	for _, b := range raw {
		if b > 0x7F {
			return "", fmt.Errorf("cannot decode %q: %w", raw, ErrNonASCII)
		}
	}

	return string(raw), nil
}

// WriteUTF8 writes a string as a UTF-8 byte sequence under the given
// length policy. Code points are encoded with the standard 1-4 byte scheme.
func (s *BitStream) WriteUTF8(text string, byteCount int) error {
	return s.writeStringBytes(encodeUTF8(text), byteCount)
}

// ReadUTF8 reads a string written by WriteUTF8 with the same byteCount.
// Returns ErrInvalidUTF8 if the decoded bytes are not valid UTF-8.
func (s *BitStream) ReadUTF8(byteCount int) (string, error) {
	raw, err := s.readStringBytes(byteCount)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("cannot decode %q: %w", raw, ErrInvalidUTF8)
	}

	return string(raw), nil
}

// writeStringBytes emits data under the shared length policy: byteCount
// bytes when positive (null-padded past the data), len(data)+1 bytes
// otherwise (the +1 being the null terminator).
func (s *BitStream) writeStringBytes(data []byte, byteCount int) error {
	length := byteCount
	if length <= 0 {
		length = len(data) + 1
	}

	for i := 0; i < length; i++ {
		var b byte
		if i < len(data) {
			b = data[i]
		}
		if err := s.WriteUint8(b); err != nil {
			return err
		}
	}

	return nil
}

// readStringBytes consumes bytes under the shared length policy. Bytes stop
// being appended once a null is seen; with a fixed byteCount the remaining
// declared bytes are still consumed, without one the read stops at the
// first null (or when the stream runs out).
func (s *BitStream) readStringBytes(byteCount int) ([]byte, error) {
	fixedLength := byteCount > 0

	var out []byte
	appending := true

	if fixedLength {
		for i := 0; i < byteCount; i++ {
			b, err := s.ReadUint8()
			if err != nil {
				return nil, err
			}
			if b == 0 {
				appending = false
			}
			if appending {
				out = append(out, b)
			}
		}

		return out, nil
	}

	for s.BitsLeft() >= 8 {
		b, err := s.ReadUint8()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			break
		}
		out = append(out, b)
	}

	return out, nil
}

// encodeUTF8 converts text to its UTF-8 byte sequence using the standard
// 1-4 byte scheme keyed on code-point ranges, with continuation bytes
// tagged 10xxxxxx.
func encodeUTF8(text string) []byte {
	out := make([]byte, 0, len(text))

	for _, r := range text {
		unicode := uint32(r)
		switch {
		case unicode <= 0x7F:
			out = append(out, byte(unicode))
		case unicode <= 0x7FF:
			out = append(out,
				byte(unicode>>6|0xC0),
				byte(unicode&0x3F|0x80))
		case unicode <= 0xFFFF:
			out = append(out,
				byte(unicode>>12|0xE0),
				byte(unicode>>6&0x3F|0x80),
				byte(unicode&0x3F|0x80))
		default:
			out = append(out,
				byte(unicode>>18|0xF0),
				byte(unicode>>12&0x3F|0x80),
				byte(unicode>>6&0x3F|0x80),
				byte(unicode&0x3F|0x80))
		}
	}

	return out
}
