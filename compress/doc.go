// Package compress provides the single-block compression codecs used by the
// warp framed stream.
//
// A codec is a byte-buffer-in, byte-buffer-out primitive: Compress produces a
// standalone compressed representation of one block, and DecompressInto
// expands such a representation into a caller-provided buffer sized to the
// block's original length. The stream encoder and decoder treat codecs as
// opaque collaborators; the raw-store fallback and frame layout live in the
// stream package.
//
// # Supported algorithms
//
//   - None: passthrough (blocks always take the raw-store path)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression (the default)
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	    DecompressInto(dst, data []byte) error
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// All built-in codecs are stateless values, safe for concurrent use; internal
// scratch buffers are pooled per call.
package compress
