package compress

// ZstdCompressor provides Zstandard compression for encoded sample batches.
//
// Zstd is the default codec for the series wire format. The compression
// level is fixed at a moderate setting (zstd level 3 equivalent): batches
// are compressed frequently and are small, so compression speed matters
// more than squeezing out the last few percent of ratio. The level is
// deliberately not configurable because the decompressed output is
// level-independent and a single level keeps behavior predictable.
//
// Performance characteristics on fixed-width record streams:
//   - Compression: ~5-20 ns/byte
//   - Decompression: ~2-5 ns/byte
//   - Ratio: 2:1 to 10:1 depending on value smoothness
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with the fixed default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
