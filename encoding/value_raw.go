package encoding

import (
	"errors"
	"fmt"
	"math"

	"github.com/findatum/serieskit/endian"
)

// ErrTruncatedValueStream reports a raw value stream whose length is not
// a whole number of 8-byte values.
var ErrTruncatedValueStream = errors.New("encoding: value stream is not a whole number of values")

// EncodeValueRaw serializes a float64 sequence as consecutive 8-byte
// little-endian values with no transform, header, or prefix. Unlike the
// delta encoding this is bit-exact for every input, including NaN
// payloads.
func EncodeValueRaw(engine endian.EndianEngine, values []float64) []byte {
	if len(values) == 0 {
		return nil
	}

	out := make([]byte, 0, len(values)*8)
	for _, v := range values {
		out = engine.AppendUint64(out, math.Float64bits(v))
	}

	return out
}

// DecodeValueRaw reconstructs the float64 sequence produced by
// EncodeValueRaw. Returns a wrapped ErrTruncatedValueStream if the
// stream length is not a multiple of 8.
func DecodeValueRaw(engine endian.EndianEngine, data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedValueStream, len(data))
	}

	values := make([]float64, len(data)/8)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(data[i*8 : i*8+8]))
	}

	return values, nil
}
