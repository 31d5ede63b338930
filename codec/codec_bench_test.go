package codec

import (
	"math/rand"
	"testing"

	"github.com/findatum/serieskit/format"
)

func benchSamples(n int) []Sample {
	rng := rand.New(rand.NewSource(1))
	samples := make([]Sample, n)

	ts := int64(1672531200000000)
	val := 100.0
	for i := range samples {
		samples[i] = Sample{Timestamp: ts, Value: val}
		ts += 1000000
		val += rng.NormFloat64()
	}

	return samples
}

func BenchmarkEncode(b *testing.B) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		b.Run(ct.String(), func(b *testing.B) {
			samples := benchSamples(1000)
			b.ResetTimer()

			for b.Loop() {
				buf, err := Encode(samples, WithCompression(ct))
				if err != nil {
					b.Fatal(err)
				}
				buf.Release()
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		b.Run(ct.String(), func(b *testing.B) {
			buf, err := Encode(benchSamples(1000), WithCompression(ct))
			if err != nil {
				b.Fatal(err)
			}
			defer buf.Release()
			data := buf.Bytes()
			b.ResetTimer()

			for b.Loop() {
				samples, err := Decode(data, WithCompression(ct))
				if err != nil {
					b.Fatal(err)
				}
				RecycleSamples(samples)
			}
		})
	}
}

func BenchmarkFingerprint(b *testing.B) {
	samples := benchSamples(1000)
	b.ResetTimer()

	for b.Loop() {
		_ = Fingerprint(samples)
	}
}
