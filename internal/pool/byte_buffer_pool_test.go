package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	_, _ = bb.Write([]byte("chunk payload"))
	origCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the length")
	assert.Equal(t, origCap, bb.Cap(), "Reset should keep the allocation")
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(64)

	require.True(t, bb.Extend(64), "extend within capacity")
	assert.Equal(t, 64, bb.Len())

	require.False(t, bb.Extend(1), "extend past capacity must fail")
	assert.Equal(t, 64, bb.Len())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.ExtendOrGrow(4096)

	assert.Equal(t, 4096, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 4096)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(ChunkBufferDefaultSize)
		origCap := bb.Cap()

		bb.Grow(128)

		assert.Equal(t, origCap, bb.Cap())
	})

	t.Run("preserves content across reallocation", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("location"))

		bb.Grow(ChunkBufferDefaultSize)

		assert.Equal(t, []byte("location"), bb.Bytes())
	})

	t.Run("large buffers grow proportionally", func(t *testing.T) {
		bb := NewByteBuffer(8 * ChunkBufferDefaultSize)
		bb.ExtendOrGrow(8 * ChunkBufferDefaultSize)

		bb.Grow(1)

		assert.GreaterOrEqual(t, bb.Cap(), 8*ChunkBufferDefaultSize+1)
	})
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("sector"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = bb.Write([]byte(" data"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, []byte("sector data"), bb.Bytes())
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 3*ChunkBufferDefaultSize/2)
	bb := NewByteBuffer(16)

	n, err := bb.ReadFrom(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, bb.Bytes())

	// A second ReadFrom appends rather than overwrites.
	n, err = bb.ReadFrom(bytes.NewReader([]byte{0xCD}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, len(payload)+1, bb.Len())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(1024, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("stale"))
	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "pooled buffer must come back empty")
}

func TestByteBufferPool_Threshold(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(64 * 1024)
	require.Greater(t, bb.Cap(), 4096)

	// Oversized buffers are dropped on Put; the next Get starts fresh.
	p.Put(bb)
	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 8192)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 0)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestChunkBuffer_Defaults(t *testing.T) {
	bb := GetChunkBuffer()
	defer PutChunkBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), ChunkBufferDefaultSize)
}

func TestChunkBuffer_ConcurrentAccess(t *testing.T) {
	const goroutines = 32
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				bb := GetChunkBuffer()
				bb.ExtendOrGrow(4096)
				assert.Equal(t, 4096, bb.Len())
				PutChunkBuffer(bb)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkChunkBuffer_GetPut(b *testing.B) {
	for b.Loop() {
		bb := GetChunkBuffer()
		bb.ExtendOrGrow(4096)
		PutChunkBuffer(bb)
	}
}

func BenchmarkChunkBuffer_ReadFrom(b *testing.B) {
	payload := make([]byte, 256*1024)

	for b.Loop() {
		bb := GetChunkBuffer()
		_, _ = bb.ReadFrom(bytes.NewReader(payload))
		PutChunkBuffer(bb)
	}
}
