// Package compress provides the generic byte-stream codecs used by the
// series codec.
//
// The compressors here have no knowledge of the record layout: they see
// an opaque byte payload and return an opaque byte payload. Payloads are
// typically small batches of fixed-width sample records (a few KB), so
// every implementation favors low per-call overhead: pooled encoder
// state, block modes, no streaming framing.
//
// Available codecs:
//
//   - Zstd: the default; fixed moderate level (fast to compress, good
//     ratio on fixed-width records)
//   - S2:   fastest, lower ratio
//   - LZ4:  block mode, fast with moderate ratio
//   - NoOp: passthrough for testing and pre-compressed payloads
//
// Use CreateCodec or GetCodec with a format.CompressionType to obtain an
// implementation.
package compress
