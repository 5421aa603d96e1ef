package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/warp/internal/pool"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal hash tables that benefit from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor implements the Codec interface using the LZ4 block format.
//
// This is the default codec for warp streams: decompression speed dominates
// the parallel decode path, and LZ4 block decompression writes straight into
// the caller's buffer without intermediate allocation.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using the LZ4 block format.
//
// The worst-case-bound scratch buffer comes from an internal pool and is never
// retained: the result is copied into a fresh slice sized exactly to the
// compressed length. A nil result means the input is incompressible and the
// caller should store it verbatim.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bb := pool.GetByteBuffer()
	defer pool.PutByteBuffer(bb)
	scratch := bb.Extend(lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, scratch)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// CompressBlock signals incompressible input with a zero length.
		return nil, nil
	}

	out := make([]byte, n)
	copy(out, scratch[:n])

	return out, nil
}

// Decompress decompresses an LZ4 block of unknown original length.
//
// It uses an adaptive buffer sizing strategy:
//  1. Start with a buffer 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer size (up to maxSize)
//  3. Return an error once the buffer exceeds the safety limit
//
// When the original length is known, DecompressInto is both faster and exact.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024 // 128MB safety limit

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressInto decompresses an LZ4 block directly into dst.
//
// dst must be sized to the block's original length; any other outcome is an
// error.
func (c LZ4Compressor) DecompressInto(dst, data []byte) error {
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return fmt.Errorf("lz4 block decompression failed: %w", err)
	}
	if n != len(dst) {
		return fmt.Errorf("lz4 block decompressed to %d bytes, want %d", n, len(dst))
	}

	return nil
}
