package codec

import (
	"fmt"

	"github.com/findatum/serieskit/compress"
	"github.com/findatum/serieskit/encoding"
	"github.com/findatum/serieskit/format"
)

// EncodeValues serializes and compresses a bare float64 sequence,
// without timestamps.
//
// The enc parameter selects the pre-compression transform:
//
//   - format.TypeRaw: consecutive 8-byte values; bit-exact for every
//     input, including NaN payloads
//   - format.TypeDelta: count-prefixed first-order differences; smooth
//     series compress considerably better, at the cost of exactness
//     only on well-behaved magnitudes (see encoding.EncodeValueDelta)
//
// The value stream carries no self-description; DecodeValues must be
// called with the same encoding and compression options.
func EncodeValues(values []float64, enc format.EncodingType, opts ...Option) (*Buffer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	comp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	var raw []byte
	switch enc {
	case format.TypeRaw:
		raw = encoding.EncodeValueRaw(wireEngine, values)
	case format.TypeDelta:
		raw = encoding.EncodeValueDelta(wireEngine, values)
	default:
		return nil, fmt.Errorf("codec: invalid value encoding: %s", enc)
	}

	compressed, err := comp.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("codec: compression failed: %w", err)
	}

	return newBuffer(compressed), nil
}

// DecodeValues restores a float64 sequence produced by EncodeValues with
// the same encoding and compression options. Truncated or malformed
// streams fail the whole call.
func DecodeValues(data []byte, enc format.EncodingType, opts ...Option) ([]float64, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	comp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	raw, err := comp.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("codec: decompression failed: %w", err)
	}

	switch enc {
	case format.TypeRaw:
		return encoding.DecodeValueRaw(wireEngine, raw)
	case format.TypeDelta:
		return encoding.DecodeValueDelta(wireEngine, raw)
	default:
		return nil, fmt.Errorf("codec: invalid value encoding: %s", enc)
	}
}
