package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.Grow(8)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 8)

	// Growing beyond capacity must preserve existing content.
	bb.MustWrite([]byte{1, 2, 3, 4})
	bb.Grow(RecordBufferDefaultSize * 2)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
}

func TestByteBufferExtend(t *testing.T) {
	bb := NewByteBuffer(8)

	require.True(t, bb.Extend(8))
	require.Equal(t, 8, bb.Len())
	require.False(t, bb.Extend(1024))

	bb.ExtendOrGrow(1024)
	require.Equal(t, 8+1024, bb.Len())
}

func TestByteBufferSetLength(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.SetLength(2)
	require.Equal(t, []byte{1, 2}, bb.Bytes())

	require.Panics(t, func() { bb.SetLength(-1) })
	require.Panics(t, func() { bb.SetLength(bb.Cap() + 1) })
}

func TestByteBufferPoolReuse(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	// A recycled buffer comes back empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // must not panic; oversized buffer is dropped

	bb2 := p.Get()
	require.NotNil(t, bb2)
	p.Put(nil) // nil is a no-op
}

func TestRecordBufferDefaults(t *testing.T) {
	bb := GetRecordBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.MustWrite(make([]byte, 128))
	PutRecordBuffer(bb)
}
