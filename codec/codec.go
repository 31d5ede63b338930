package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/findatum/serieskit/compress"
	"github.com/findatum/serieskit/encoding"
	"github.com/findatum/serieskit/endian"
	"github.com/findatum/serieskit/internal/hash"
)

// Sample is one timestamp/value observation in a time series.
//
// The timestamp is microseconds since Unix epoch. Samples are treated
// positionally: the codec enforces no ordering or uniqueness, and a
// decoded sequence preserves encode order exactly.
type Sample struct {
	Timestamp int64
	Value     float64
}

// ErrTruncatedRecord reports a decompressed stream whose length is not a
// whole number of 16-byte records. A partial trailing record means the
// stream was corrupted or cut; decoding fails entirely rather than
// dropping the fragment, since silent truncation would break the
// round-trip contract.
var ErrTruncatedRecord = errors.New("codec: decompressed length is not a multiple of the record size")

// wireEngine is the byte order of the wire format. This is a
// compatibility contract with previously compressed data and must not
// change.
var wireEngine = endian.GetLittleEndianEngine()

// samplePool recycles decoded sample slices between Decode and
// RecycleSamples on hot paths.
var samplePool = sync.Pool{
	New: func() any { return &[]Sample{} },
}

// Encode serializes samples as fixed-width records and compresses the
// record stream with the configured compressor (Zstd unless overridden
// via options).
//
// The returned Buffer owns pooled storage; the caller must call its
// Release method exactly once. An empty (or nil) sample sequence encodes
// to a valid buffer that decodes back to an empty sequence.
//
// A compression failure is terminal and non-retryable: it indicates a
// broken compressor or resource exhaustion, not bad sample data.
func Encode(samples []Sample, opts ...Option) (*Buffer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	comp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	enc := encoding.NewSampleRawEncoder(wireEngine)
	defer enc.Finish()

	for _, s := range samples {
		enc.Write(s.Timestamp, s.Value)
	}

	compressed, err := comp.Compress(enc.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codec: compression failed: %w", err)
	}

	// The compressed slice may alias the encoder's pooled buffer (NoOp
	// passes it through untouched), so the Buffer takes a copy before
	// enc.Finish releases that storage.
	return newBuffer(compressed), nil
}

// Decode decompresses data and reconstructs the sample sequence it was
// encoded from, in encode order.
//
// It fails with a wrapped decompression error for a malformed compressed
// stream, and with ErrTruncatedRecord if the decompressed length is not
// a multiple of 16. On any error the whole call fails; no partial
// sequence is returned.
//
// The returned slice is owned by the caller. Hot paths may hand it back
// via RecycleSamples once finished with it.
func Decode(data []byte, opts ...Option) ([]Sample, error) {
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

	if len(raw)%encoding.RecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedRecord, len(raw))
	}

	dec := encoding.NewSampleRawDecoder(wireEngine)
	samples := getSampleSlice(dec.Count(raw))

	i := 0
	for ts, val := range dec.All(raw) {
		samples[i] = Sample{Timestamp: ts, Value: val}
		i++
	}

	return samples, nil
}

// Fingerprint computes a 64-bit xxHash fingerprint of a sample sequence.
//
// The hash covers the same record layout Encode puts on the wire, so two
// sequences fingerprint equal exactly when every timestamp and value is
// bit-for-bit equal. The fingerprint is never embedded in the encoded
// buffer; it is an out-of-band helper for cheap equality checks and
// deduplication.
func Fingerprint(samples []Sample) uint64 {
	enc := encoding.NewSampleRawEncoder(wireEngine)
	defer enc.Finish()

	for _, s := range samples {
		enc.Write(s.Timestamp, s.Value)
	}

	return hash.Bytes(enc.Bytes())
}

// RecycleSamples returns a slice obtained from Decode to the internal
// pool. Optional: slices not recycled are simply collected by the GC.
// The caller must not use the slice afterwards.
func RecycleSamples(samples []Sample) {
	if samples == nil {
		return
	}

	samples = samples[:0]
	samplePool.Put(&samples)
}

func getSampleSlice(size int) []Sample {
	ptr, _ := samplePool.Get().(*[]Sample)
	slice := *ptr

	if cap(slice) < size {
		return make([]Sample, size)
	}

	return slice[:size]
}
