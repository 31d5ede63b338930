package encoding

import (
	"errors"
	"fmt"
	"math"

	"github.com/findatum/serieskit/endian"
	"github.com/findatum/serieskit/internal/pool"
	"github.com/findatum/serieskit/internal/vec"
)

// ErrTruncatedDeltaStream reports a delta stream whose payload is shorter
// than its count prefix promises.
var ErrTruncatedDeltaStream = errors.New("encoding: delta stream shorter than declared count")

// valueDeltaHeaderSize is the uint64 count prefix preceding the deltas.
const valueDeltaHeaderSize = 8

// EncodeValueDelta serializes a float64 sequence as a count-prefixed
// stream of first-order differences.
//
// Layout: 8 bytes little-endian uint64 element count, then one 8-byte
// float64 delta per element, where delta[0] = values[0] - 0.0 and
// delta[i] = values[i] - values[i-1]. Deltas of a smooth series cluster
// near zero and compress substantially better than the raw values.
//
// An empty input produces an empty (nil) output, not a bare header.
//
// The transform is lossless for finite inputs in the exact-bit sense
// only when the subtraction is exactly invertible; decode reconstructs
// by prefix summation, so pathological magnitude jumps can round.
// Callers needing bit-exact round trips for arbitrary values should use
// the raw sample encoding instead.
func EncodeValueDelta(engine endian.EndianEngine, values []float64) []byte {
	if len(values) == 0 {
		return nil
	}

	deltas, cleanup := pool.GetFloat64Slice(len(values))
	defer cleanup()
	vec.Delta(deltas, values, 0.0)

	out := make([]byte, 0, valueDeltaHeaderSize+len(values)*8)
	out = engine.AppendUint64(out, uint64(len(values)))
	for _, d := range deltas {
		out = engine.AppendUint64(out, math.Float64bits(d))
	}

	return out
}

// DecodeValueDelta reconstructs the float64 sequence produced by
// EncodeValueDelta.
//
// Returns ErrTruncatedDeltaStream (possibly wrapped) if the stream ends
// before the declared element count, and an error for a stream too short
// to carry its own header. An empty input yields an empty sequence.
func DecodeValueDelta(engine endian.EndianEngine, data []byte) ([]float64, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if len(data) < valueDeltaHeaderSize {
		return nil, fmt.Errorf("%w: %d byte header fragment", ErrTruncatedDeltaStream, len(data))
	}

	count := engine.Uint64(data[:valueDeltaHeaderSize])
	payload := data[valueDeltaHeaderSize:]

	// Guard the multiplication against overflow before the exact check.
	if count > uint64(len(payload))/8 || uint64(len(payload)) != count*8 {
		return nil, fmt.Errorf("%w: declared %d elements, payload %d bytes",
			ErrTruncatedDeltaStream, count, len(payload))
	}

	values := make([]float64, count)
	prev := 0.0
	for i := range values {
		delta := math.Float64frombits(engine.Uint64(payload[i*8 : i*8+8]))
		prev += delta
		values[i] = prev
	}

	return values, nil
}
