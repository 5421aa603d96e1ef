package compress

import "fmt"

// NoOpCompressor provides a no-operation codec that bypasses data without
// compression.
//
// Compress returns the input unchanged, which is never smaller than the
// original, so every block encoded with this codec takes the raw-store path.
// It is useful for baselines, tests, and inputs known to be incompressible.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data as-is without copying.
//
// The returned slice shares the input's underlying memory.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressInto copies the input data into dst.
//
// The payload of a no-op codec is the original data, so the sizes must match
// exactly.
func (c NoOpCompressor) DecompressInto(dst, data []byte) error {
	if len(data) != len(dst) {
		return fmt.Errorf("noop payload is %d bytes, want %d", len(data), len(dst))
	}
	copy(dst, data)

	return nil
}
