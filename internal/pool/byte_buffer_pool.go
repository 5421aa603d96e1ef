// Package pool provides reusable scratch buffers for compression codecs.
//
// Block compressors need a worst-case-bound scratch buffer for every Compress
// call. Pooling those buffers keeps the bound-sized allocation out of the per
// block hot path while the exact-sized result is always a fresh allocation
// owned by the caller.
package pool

import "sync"

const (
	// ScratchBufferDefaultSize is the initial capacity of pooled scratch buffers.
	ScratchBufferDefaultSize = 64 * 1024 // 64KiB

	// ScratchBufferMaxThreshold caps the capacity of buffers returned to the
	// pool. Buffers grown beyond it (huge blocks) are dropped for the GC to
	// reclaim instead of pinning their memory in the pool.
	ScratchBufferMaxThreshold = 16 * 1024 * 1024 // 16MiB
)

// ByteBuffer is a growable byte slice wrapper suitable for pooling.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Extend resizes the buffer to exactly size bytes and returns it, reallocating
// only when the current capacity is insufficient. The content is unspecified.
func (bb *ByteBuffer) Extend(size int) []byte {
	if cap(bb.B) < size {
		bb.B = make([]byte, size)
	} else {
		bb.B = bb.B[:size]
	}

	return bb.B
}

var byteBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(ScratchBufferDefaultSize)
	},
}

// GetByteBuffer retrieves an empty ByteBuffer from the pool.
func GetByteBuffer() *ByteBuffer {
	bb, _ := byteBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutByteBuffer returns a ByteBuffer to the pool, dropping oversized buffers.
func PutByteBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > ScratchBufferMaxThreshold {
		return
	}

	byteBufferPool.Put(bb)
}
