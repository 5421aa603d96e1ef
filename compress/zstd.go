package compress

// ZstdCompressor implements the Codec interface using Zstandard compression.
//
// Zstd trades compression speed for ratio, which suits blocks headed for cold
// storage or constrained transports. Two implementations exist behind build
// tags: the pure-Go klauspost/compress encoder (default) and valyala/gozstd
// bindings to libzstd when cgo is available.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
