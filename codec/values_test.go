package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/findatum/serieskit/encoding"
	"github.com/findatum/serieskit/format"
)

func TestEncodeValues_RawRoundTrip(t *testing.T) {
	values := []float64{math.Pi, math.Inf(1), math.Copysign(0, -1), -1e300}

	buf, err := EncodeValues(values, format.TypeRaw)
	require.NoError(t, err)
	defer buf.Release()

	decoded, err := DecodeValues(buf.Bytes(), format.TypeRaw)
	require.NoError(t, err)
	require.Len(t, decoded, len(values))
	for i := range values {
		require.Equal(t, math.Float64bits(values[i]), math.Float64bits(decoded[i]))
	}
}

func TestEncodeValues_DeltaRoundTrip(t *testing.T) {
	values := []float64{100, 100.25, 100.5, 100.25, 99.75}

	buf, err := EncodeValues(values, format.TypeDelta)
	require.NoError(t, err)
	defer buf.Release()

	decoded, err := DecodeValues(buf.Bytes(), format.TypeDelta)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestEncodeValues_Empty(t *testing.T) {
	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeDelta} {
		buf, err := EncodeValues(nil, enc)
		require.NoError(t, err)

		decoded, err := DecodeValues(buf.Bytes(), enc)
		buf.Release()
		require.NoError(t, err)
		require.Empty(t, decoded)
	}
}

func TestEncodeValues_InvalidEncoding(t *testing.T) {
	_, err := EncodeValues([]float64{1}, format.EncodingType(0xFF))
	require.Error(t, err)

	_, err = DecodeValues(nil, format.EncodingType(0xFF))
	require.Error(t, err)
}

func TestDecodeValues_Truncated(t *testing.T) {
	// 12 raw bytes is one and a half values.
	_, err := DecodeValues(make([]byte, 12), format.TypeRaw, WithCompression(format.CompressionNone))
	require.ErrorIs(t, err, encoding.ErrTruncatedValueStream)
}
