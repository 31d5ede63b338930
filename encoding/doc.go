// Package encoding implements the byte-level layers of the serieskit
// wire format.
//
// Two encodings are provided:
//
//   - Sample raw: each (timestamp, value) sample occupies a fixed
//     16-byte record — 8 bytes little-endian int64 microseconds, then
//     8 bytes little-endian IEEE-754 float64. Records carry no header,
//     length prefix, or metadata; the stream is just records in input
//     order. This layout is the compatibility contract for previously
//     compressed data and must never change.
//
//   - Value delta: a standalone float64 sequence stored as a uint64
//     count prefix followed by first-order differences from the
//     previous value. Smooth series produce near-zero deltas whose
//     repeated byte patterns compress far better than raw values.
//
// Both encodings are lossless: every bit of every timestamp and value
// survives a round trip.
package encoding
