package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Extend(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(8)
	require.Equal(0, bb.Len())
	require.Equal(8, bb.Cap())

	// Within capacity: no reallocation, length set exactly.
	b := bb.Extend(4)
	require.Len(b, 4)
	require.Equal(8, bb.Cap())

	// Beyond capacity: grows to exactly the requested size.
	b = bb.Extend(100)
	require.Len(b, 100)
	require.GreaterOrEqual(bb.Cap(), 100)

	bb.Reset()
	require.Equal(0, bb.Len())
	require.Equal(bb.Bytes(), bb.B[:0])
}

func TestGetPutByteBuffer(t *testing.T) {
	require := require.New(t)

	bb := GetByteBuffer()
	require.NotNil(bb)
	require.Equal(0, bb.Len())

	bb.Extend(128)
	PutByteBuffer(bb)

	// Buffers handed out by the pool are always empty.
	again := GetByteBuffer()
	require.Equal(0, again.Len())
	PutByteBuffer(again)

	// Oversized and nil buffers are silently dropped.
	huge := NewByteBuffer(ScratchBufferMaxThreshold + 1)
	PutByteBuffer(huge)
	PutByteBuffer(nil)
}
