// Package serieskit is a small numeric kernel library for time-ordered
// scalar data.
//
// It does two independent things:
//
//   - Series codec: serialize a sequence of (timestamp, value) samples
//     as compact fixed-width records, compress them with a generic byte
//     codec, and losslessly restore them. See the codec package.
//
//   - Windowed statistics: moving average, exponential moving average,
//     and windowed population standard deviation over a flat float64
//     sequence, computed with lane-unrolled inner loops. See the stats
//     package.
//
// The two components share only the sample data model and never call
// each other: statistics run over raw value sequences, not compressed
// buffers.
//
// # Compressing a series
//
//	samples := []serieskit.Sample{
//	    {Timestamp: 0, Value: 1.0},
//	    {Timestamp: 1000000, Value: 2.0},
//	    {Timestamp: 2000000, Value: 3.0},
//	}
//
//	buf, err := serieskit.Compress(samples)
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//
//	restored, err := serieskit.Decompress(buf.Bytes())
//
// # Computing statistics
//
//	values := []float64{1, 2, 3, 4, 5}
//	ma, _ := serieskit.MovingAverage(values, 3)   // ma[2:] = 2, 3, 4
//	ema, _ := serieskit.ExponentialMovingAverage(values, 0.5)
//	sd, _ := serieskit.WindowedStdDev(values, 3)
//
// This package provides convenient top-level wrappers around the codec
// and stats packages, covering the common cases. Use those packages
// directly for in-place output variants and non-default compression.
package serieskit

import (
	"github.com/findatum/serieskit/codec"
	"github.com/findatum/serieskit/stats"
)

// Sample is one timestamp/value observation in a time series. The
// timestamp is microseconds since Unix epoch.
type Sample = codec.Sample

// Compress serializes and compresses samples. The returned buffer is
// owned by the caller and must be released exactly once.
func Compress(samples []Sample, opts ...codec.Option) (*codec.Buffer, error) {
	return codec.Encode(samples, opts...)
}

// Decompress restores the sample sequence from a buffer produced by
// Compress, preserving order and every bit of every sample.
func Decompress(data []byte, opts ...codec.Option) ([]Sample, error) {
	return codec.Decode(data, opts...)
}

// MovingAverage computes the windowed arithmetic mean at every index
// from window-1 onward.
func MovingAverage(values []float64, window int) ([]float64, error) {
	return stats.MovingAverage(values, window)
}

// ExponentialMovingAverage computes the sequential EMA recurrence with
// smoothing factor alpha in [0, 1].
func ExponentialMovingAverage(values []float64, alpha float64) ([]float64, error) {
	return stats.ExponentialMovingAverage(values, alpha)
}

// WindowedStdDev computes the windowed population standard deviation at
// every index from window-1 onward.
func WindowedStdDev(values []float64, window int) ([]float64, error) {
	return stats.WindowedStdDev(values, window)
}
