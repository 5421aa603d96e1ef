//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const zstdCgoCompressionLevel = 3

// Compress compresses the input data using libzstd via cgo.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdCgoCompressionLevel), nil
}

// Decompress decompresses Zstd-compressed data of unknown original length.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressInto decompresses Zstd-compressed data directly into dst.
//
// gozstd.Decompress appends into dst's backing array; an exact-size expansion
// never reallocates, so the copy below only runs when the declared size was
// wrong.
func (c ZstdCompressor) DecompressInto(dst, data []byte) error {
	out, err := gozstd.Decompress(dst[:0], data)
	if err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) != len(dst) {
		return fmt.Errorf("zstd decompressed to %d bytes, want %d", len(out), len(dst))
	}
	if len(dst) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return nil
}
