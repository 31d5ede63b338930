// Package codec serializes and compresses sequences of timestamp/value
// samples, and losslessly restores them.
//
// Encoding is a two-stage pipeline: samples are serialized as headerless
// fixed 16-byte little-endian records (see the encoding package), then
// the record stream is handed to a generic byte compressor (see the
// compress package, Zstd by default). Decoding inverts both stages and
// fails the whole call on a malformed compressed stream or a partial
// trailing record; it never returns a silently truncated sequence.
//
// Encode yields an owned *Buffer backed by pooled storage. The receiver
// of a Buffer must call Release exactly once when done; Release hands
// the storage back to the pool, and any further use of the handle is a
// programming error that panics.
//
//	buf, err := codec.Encode(samples)
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//	store(buf.Bytes())
package codec
