package compress

import (
	"fmt"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/format"
)

// Compressor compresses a single block of data.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated, sized exactly to the compressed
	// length, and owned by the caller; the input slice is not modified.
	// A nil result with a nil error means the codec considers the input
	// incompressible and the caller should store the original bytes verbatim.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a single block of data.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result
	// in a newly allocated slice. It is used when the original length is not
	// known up front.
	Decompress(data []byte) ([]byte, error)

	// DecompressInto decompresses data into dst, whose length must equal the
	// block's original size. The implementation writes directly into dst and
	// returns an error if the payload does not expand to exactly len(dst)
	// bytes. dst and data must not overlap.
	DecompressInto(dst, data []byte) error
}

// Codec combines compression and decompression for a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// The target string describes the usage site and is only used in error
// messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression: %s", errs.ErrInvalidCompressionType, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}
