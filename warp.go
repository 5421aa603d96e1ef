// Package warp provides a blocked, parallel compression codec.
//
// Warp splits an input byte stream into fixed-size blocks, compresses each
// block independently, and serializes the results into a self-describing
// framed stream that decodes back to the original bytes. Blocks whose
// compressed form would not shrink are stored verbatim, so the encoded stream
// never exceeds the input by more than one 8-byte header per block. Both
// compression and decompression are parallel across blocks, with output
// byte-identical for any worker count.
//
// # Basic Usage
//
//	encoded, err := warp.Compress(data)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := warp.Decompress(encoded)
//	if err != nil {
//	    return err
//	}
//	// bytes.Equal(data, decoded) == true
//
// Tuning the block size and algorithm:
//
//	encoded, err := warp.CompressBlockSize(data, 4<<20,
//	    stream.WithCompression(format.CompressionZstd),
//	    stream.WithConcurrency(8),
//	)
//
// The frame format does not record the compression algorithm, so Decompress
// must be configured with the same compression type the stream was encoded
// with (both default to LZ4).
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream
// package, which implements the encode/decode pipeline. The compress package
// holds the single-block codecs and the section package defines the frame
// layout.
package warp

import (
	"github.com/arloliu/warp/stream"
)

// DefaultBlockSize is the block size Compress uses when the caller does not
// choose one. 1MiB balances compression ratio against parallelism: large
// enough for the codecs to find matches, small enough that typical inputs
// split into many independent blocks.
const DefaultBlockSize = 1 << 20 // 1MiB

// Compress encodes data into a warp framed stream using DefaultBlockSize.
//
// Options configure the compression algorithm and worker count; see the
// stream package. Returns the encoded stream, or an error and no data.
func Compress(data []byte, opts ...stream.Option) ([]byte, error) {
	return stream.Encode(data, DefaultBlockSize, opts...)
}

// CompressBlockSize encodes data into a warp framed stream using the given
// block size.
//
// The block size must be positive and at most section.MaxBlockSize (512MiB);
// anything else fails with errs.ErrInvalidBlockSize.
func CompressBlockSize(data []byte, blockSize int, opts ...stream.Option) ([]byte, error) {
	return stream.Encode(data, blockSize, opts...)
}

// Decompress reconstructs the original bytes from a warp framed stream.
//
// It must be configured with the same compression type used to encode the
// stream. Malformed streams fail with errs.ErrMalformedStream, payloads that
// do not expand to their declared size with errs.ErrCodecMismatch; in both
// cases no data is returned.
func Decompress(data []byte, opts ...stream.Option) ([]byte, error) {
	return stream.Decode(data, opts...)
}
