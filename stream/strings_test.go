package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASCIINullTerminated(t *testing.T) {
	s, err := New(32)
	require.NoError(t, err)

	require.NoError(t, s.WriteASCII("hello", 0))
	// the terminator is written on the wire
	require.Equal(t, 6*8, s.Index())

	require.NoError(t, s.SetIndex(0))
	got, err := s.ReadASCII(0)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestASCIIFixedLength(t *testing.T) {
	s, err := New(32)
	require.NoError(t, err)

	require.NoError(t, s.WriteASCII("hello", 10))
	require.Equal(t, 10*8, s.Index())

	// a sentinel right after the fixed field
	require.NoError(t, s.WriteUint8(0x55))

	require.NoError(t, s.SetIndex(0))
	got, err := s.ReadASCII(10)
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	// the reader consumed the full declared field, not just the text
	require.Equal(t, 10*8, s.Index())
	sentinel, err := s.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x55), sentinel)
}

func TestASCIIFixedLengthTruncates(t *testing.T) {
	s, err := New(8)
	require.NoError(t, err)

	require.NoError(t, s.WriteASCII("overlong", 4))
	require.Equal(t, 4*8, s.Index())

	require.NoError(t, s.SetIndex(0))
	got, err := s.ReadASCII(4)
	require.NoError(t, err)
	require.Equal(t, "over", got)
}

func TestASCIIEmbeddedNullStopsAppending(t *testing.T) {
	s, err := New(16)
	require.NoError(t, err)

	require.NoError(t, s.WriteUint8('a'))
	require.NoError(t, s.WriteUint8('b'))
	require.NoError(t, s.WriteUint8(0))
	require.NoError(t, s.WriteUint8('c'))
	require.NoError(t, s.WriteUint8(0))

	require.NoError(t, s.SetIndex(0))
	got, err := s.ReadASCII(5)
	require.NoError(t, err)
	require.Equal(t, "ab", got)
	require.Equal(t, 5*8, s.Index())
}

func TestASCIIRejectsNonASCII(t *testing.T) {
	s, err := New(16)
	require.NoError(t, err)

	err = s.WriteASCII("héllo", 0)
	require.ErrorIs(t, err, ErrNonASCII)
	require.Equal(t, 0, s.Index())
}

func TestASCIIUnterminatedStopsAtBufferEnd(t *testing.T) {
	s, err := FromBytes([]byte{'a', 'b', 'c'})
	require.NoError(t, err)

	got, err := s.ReadASCII(0)
	require.NoError(t, err)
	require.Equal(t, "abc", got)
	require.Equal(t, 0, s.BitsLeft())
}

func TestUTF8RoundTrip(t *testing.T) {
	s, err := New(64)
	require.NoError(t, err)

	// 1-, 2-, 3- and 4-byte sequences
	text := "aé世\U0001F600"
	require.NoError(t, s.WriteUTF8(text, 0))

	require.NoError(t, s.SetIndex(0))
	got, err := s.ReadUTF8(0)
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestUTF8FixedLength(t *testing.T) {
	s, err := New(32)
	require.NoError(t, err)

	require.NoError(t, s.WriteUTF8("héllo", 12))
	require.Equal(t, 12*8, s.Index())

	require.NoError(t, s.SetIndex(0))
	got, err := s.ReadUTF8(12)
	require.NoError(t, err)
	require.Equal(t, "héllo", got)
}

func TestUTF8RejectsInvalidBytes(t *testing.T) {
	// a lone continuation byte is not valid UTF-8
	s, err := FromBytes([]byte{0x80, 0x00})
	require.NoError(t, err)

	_, err = s.ReadUTF8(0)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestStringUnaligned(t *testing.T) {
	s, err := New(16)
	require.NoError(t, err)

	require.NoError(t, s.WriteBitsUnsigned(0b101, 3))
	require.NoError(t, s.WriteASCII("hi", 0))

	require.NoError(t, s.SetIndex(3))
	got, err := s.ReadASCII(0)
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}
