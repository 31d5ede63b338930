package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/findatum/serieskit/format"
)

// recordPayload builds a synthetic fixed-width record stream resembling
// the codec layer's real input: monotonic timestamps and a smooth walk.
func recordPayload(records int) []byte {
	rng := rand.New(rand.NewSource(99))
	buf := make([]byte, 0, records*16)

	ts := uint64(1672531200000000)
	val := uint64(0x4059000000000000) // 100.0
	for range records {
		for _, v := range []uint64{ts, val} {
			buf = append(buf,
				byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
				byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
		}
		ts += 1000000
		val += uint64(rng.Intn(1 << 16))
	}

	return buf
}

func TestAllCodecsRoundTrip(t *testing.T) {
	payload := recordPayload(512)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCompressibleRatio(t *testing.T) {
	// Repetitive record streams must actually shrink.
	payload := bytes.Repeat(recordPayload(16), 64)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should compress repetitive records", ct)
	}
}

func TestEmptyPayload(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCorruptedInputFails(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "%s should reject garbage", ct)
	}
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionZstd, "payload")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0xFF), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}
