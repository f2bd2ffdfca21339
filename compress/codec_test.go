package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestPayload(size int) []byte {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, size)
	// Repetitive structure so every codec actually shrinks the payload.
	for i := range data {
		if i%16 < 12 {
			data[i] = byte(i % 7)
		} else {
			data[i] = byte(rng.Intn(256))
		}
	}

	return data
}

func TestCodecRoundTrip(t *testing.T) {
	payload := makeTestPayload(8192)

	types := []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4}
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	types := []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4}
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecCompressionReducesSize(t *testing.T) {
	payload := makeTestPayload(16384)

	for _, ct := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodecCorruptedInput(t *testing.T) {
	for _, ct := range []Type{TypeZstd, TypeLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
			require.Error(t, err)
		})
	}
}

func TestGetCodecUnknownType(t *testing.T) {
	_, err := GetCodec(Type(0xFF))
	require.Error(t, err)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "None", TypeNone.String())
	require.Equal(t, "Zstd", TypeZstd.String())
	require.Equal(t, "S2", TypeS2.String())
	require.Equal(t, "LZ4", TypeLZ4.String())
	require.Equal(t, "Unknown", Type(0xFF).String())

	require.True(t, TypeS2.IsValid())
	require.False(t, Type(0).IsValid())
}
