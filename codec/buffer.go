package codec

import "github.com/findatum/serieskit/internal/pool"

// Buffer is a single-owner handle over an encoded, compressed byte
// stream backed by pooled storage.
//
// Ownership discipline: Encode allocates the buffer and yields ownership
// to the caller; whoever holds the handle must call Release exactly
// once. Go has no move semantics, so the exactly-once contract is a
// checked runtime invariant: Release poisons the handle, and a second
// Release, or Bytes/Len after Release, panics. Such a panic is an
// ownership violation in the calling code, not a recoverable condition.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	bb       *pool.ByteBuffer
	released bool
}

func newBuffer(data []byte) *Buffer {
	bb := pool.GetRecordBuffer()
	bb.MustWrite(data)

	return &Buffer{bb: bb}
}

// Bytes returns the encoded byte stream.
//
// The slice references the buffer's pooled storage: it is valid only
// until Release, and callers needing the data beyond the buffer's
// lifetime must copy it.
func (b *Buffer) Bytes() []byte {
	b.mustOwn("Bytes")
	return b.bb.Bytes()
}

// Len returns the encoded size in bytes.
func (b *Buffer) Len() int {
	b.mustOwn("Len")
	return b.bb.Len()
}

// Release returns the buffer's storage to the pool and poisons the
// handle. It must be called exactly once by the buffer's owner.
func (b *Buffer) Release() {
	b.mustOwn("Release")
	b.released = true
	pool.PutRecordBuffer(b.bb)
	b.bb = nil
}

func (b *Buffer) mustOwn(op string) {
	if b.released {
		panic("codec: " + op + " on released Buffer (ownership violation)")
	}
}
