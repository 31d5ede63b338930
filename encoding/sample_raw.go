package encoding

import (
	"iter"
	"math"

	"github.com/findatum/serieskit/endian"
	"github.com/findatum/serieskit/internal/pool"
)

// RecordSize is the fixed on-wire size of one encoded sample:
// 8 bytes int64 timestamp followed by 8 bytes float64 value.
const RecordSize = 16

// SampleRawEncoder serializes (timestamp, value) samples as fixed
// 16-byte records in write order.
//
// The encoder appends to a pooled internal buffer. Retrieve the encoded
// stream with Bytes, then call Finish to return the buffer to the pool
// once the bytes have been consumed or copied.
type SampleRawEncoder struct {
	buf    *pool.ByteBuffer
	count  int
	engine endian.EndianEngine
}

// NewSampleRawEncoder creates a sample encoder using the specified endian
// engine.
//
// The wire contract is little-endian; the engine parameter exists so the
// decode path and tests can exercise both byte orders through the same
// implementation.
//
// Returns:
//   - *SampleRawEncoder: A new encoder instance backed by a pooled buffer
func NewSampleRawEncoder(engine endian.EndianEngine) *SampleRawEncoder {
	return &SampleRawEncoder{
		engine: engine,
		buf:    pool.GetRecordBuffer(),
	}
}

// Write appends a single sample as one 16-byte record.
//
// The timestamp is microseconds since Unix epoch (time.Time.UnixMicro);
// the value is stored by its IEEE-754 bit pattern, so NaN payloads and
// signed zeros survive the round trip exactly.
func (e *SampleRawEncoder) Write(timestampUs int64, value float64) {
	e.count++

	e.buf.Grow(RecordSize)

	start := e.buf.Len()
	e.buf.ExtendOrGrow(RecordSize)
	b := e.buf.Bytes()[start : start+RecordSize]
	e.engine.PutUint64(b[0:8], uint64(timestampUs)) //nolint:gosec
	e.engine.PutUint64(b[8:16], math.Float64bits(value))
}

// WriteSlice appends one record per element of the parallel
// timestamp/value slices, pre-growing the buffer once for the whole
// batch. Both slices must have the same length.
func (e *SampleRawEncoder) WriteSlice(timestampsUs []int64, values []float64) {
	n := len(timestampsUs)
	e.count += n

	if n == 0 {
		return
	}

	start := e.buf.Len()
	e.buf.Grow(n * RecordSize)
	e.buf.ExtendOrGrow(n * RecordSize)
	buf := e.buf.Bytes()

	for i, ts := range timestampsUs {
		offset := start + i*RecordSize
		e.engine.PutUint64(buf[offset:offset+8], uint64(ts)) //nolint:gosec
		e.engine.PutUint64(buf[offset+8:offset+16], math.Float64bits(values[i]))
	}
}

// Bytes returns the encoded byte stream of all written samples.
//
// The returned slice references the internal buffer: it is valid until
// the next call to Write, WriteSlice, or Finish, and must not be
// modified by the caller.
func (e *SampleRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded samples.
func (e *SampleRawEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded stream.
func (e *SampleRawEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the internal buffer to the pool and resets the encoder
// for a new sequence. Any slice previously obtained from Bytes becomes
// invalid.
func (e *SampleRawEncoder) Finish() {
	pool.PutRecordBuffer(e.buf)
	e.buf = pool.GetRecordBuffer()
	e.count = 0
}

// SampleRawDecoder decodes fixed 16-byte sample records.
//
// The decoder is stateless; one instance may decode any number of
// streams, concurrently if desired.
type SampleRawDecoder struct {
	engine endian.EndianEngine
}

// NewSampleRawDecoder creates a sample decoder using the specified endian
// engine.
func NewSampleRawDecoder(engine endian.EndianEngine) SampleRawDecoder {
	return SampleRawDecoder{engine: engine}
}

// Count returns the number of complete records in data. It does not
// validate that data is an exact multiple of RecordSize; callers
// enforcing the truncation contract must check that separately.
func (d SampleRawDecoder) Count(data []byte) int {
	return len(data) / RecordSize
}

// All returns an iterator over (timestamp, value) pairs decoded from
// data in stream order. Trailing bytes beyond the last complete record
// are ignored; the codec layer rejects such streams before decoding.
func (d SampleRawDecoder) All(data []byte) iter.Seq2[int64, float64] {
	return func(yield func(int64, float64) bool) {
		n := d.Count(data)
		for i := 0; i < n; i++ {
			offset := i * RecordSize
			ts := int64(d.engine.Uint64(data[offset : offset+8])) //nolint:gosec
			val := math.Float64frombits(d.engine.Uint64(data[offset+8 : offset+16]))
			if !yield(ts, val) {
				return
			}
		}
	}
}
