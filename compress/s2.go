package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor implements the Codec interface using S2 compression.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressInto decompresses an S2 block directly into dst.
//
// s2.Decode reuses dst when its capacity suffices, which it does whenever the
// payload expands to exactly len(dst) bytes; the copy below only runs when the
// declared size was wrong and the library allocated its own buffer.
func (c S2Compressor) DecompressInto(dst, data []byte) error {
	out, err := s2.Decode(dst[:0], data)
	if err != nil {
		return fmt.Errorf("s2 decompression failed: %w", err)
	}
	if len(out) != len(dst) {
		return fmt.Errorf("s2 decompressed to %d bytes, want %d", len(out), len(dst))
	}
	if len(dst) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return nil
}
