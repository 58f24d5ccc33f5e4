// Package pool provides pooled byte buffers for staging compressed chunk
// payloads and decompression output without per-call allocations.
package pool

import (
	"io"
	"sync"
)

const (
	// ChunkBufferDefaultSize is the initial capacity of pooled buffers. Most
	// compressed chunk payloads fit in a few sectors.
	ChunkBufferDefaultSize = 64 * 1024

	// ChunkBufferMaxThreshold is the largest buffer the pool retains. An
	// in-file chunk is capped at 255 sectors (~1MiB); buffers grown past this
	// threshold by oversized external chunks are discarded instead of pinned.
	ChunkBufferMaxThreshold = 4 * 1024 * 1024
)

// ByteBuffer is a growable byte slice with explicit length control, suitable
// for io.ReaderAt staging and as an io.Writer target for compressors.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer while keeping its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Extend lengthens the buffer by n bytes without reallocating. It reports
// false if the capacity is insufficient.
func (bb *ByteBuffer) Extend(n int) bool {
	cur := len(bb.B)
	if cap(bb.B)-cur < n {
		return false
	}

	bb.B = bb.B[:cur+n]

	return true
}

// ExtendOrGrow lengthens the buffer by n bytes, reallocating if needed. The
// added bytes have unspecified content; callers overwrite them.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	cur := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:cur+n]
}

// Grow ensures the buffer can take n more bytes without reallocating.
//
// Small buffers grow in ChunkBufferDefaultSize steps; larger ones grow by a
// quarter of their capacity to bound both reallocation count and slack.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := ChunkBufferDefaultSize
	if cap(bb.B) > 4*ChunkBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(next, bb.B)
	bb.B = next
}

// Write appends data to the buffer, growing it as needed. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom appends r's content to the buffer until EOF.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(ChunkBufferDefaultSize / 2)
		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool pools ByteBuffers, discarding those grown past a threshold
// so one oversized payload cannot pin memory for the life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and are
// dropped on Put once their capacity exceeds maxThreshold (0 disables the
// threshold).
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var chunkPool = NewByteBufferPool(ChunkBufferDefaultSize, ChunkBufferMaxThreshold)

// GetChunkBuffer retrieves a ByteBuffer from the shared chunk pool.
func GetChunkBuffer() *ByteBuffer {
	return chunkPool.Get()
}

// PutChunkBuffer returns a ByteBuffer to the shared chunk pool.
func PutChunkBuffer(bb *ByteBuffer) {
	chunkPool.Put(bb)
}
