// Package errs defines the sentinel errors shared across the warp module.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to attach
// context while keeping errors.Is matching intact. All errors are terminal
// for the operation that raised them: encode and decode either fully succeed
// or return no data at all.
package errs

import "errors"

var (
	// ErrInvalidBlockSize indicates a requested block size of zero, a negative
	// value, or a value above section.MaxBlockSize.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidCompressionType indicates an unknown compression type was
	// requested when configuring an encoder or decoder.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidHeaderSize indicates a frame header buffer smaller than the
	// fixed 8-byte header layout.
	ErrInvalidHeaderSize = errors.New("invalid frame header size")

	// ErrMalformedStream indicates a framed stream that cannot be indexed:
	// a header declares an out-of-bound block size, a payload extends past
	// the end of the input, or trailing bytes remain after the last frame.
	ErrMalformedStream = errors.New("malformed stream")

	// ErrCodecMismatch indicates a block payload that the configured codec
	// could not expand to exactly the declared original size. This usually
	// means data corruption or an encoder/decoder configured with different
	// compression types.
	ErrCodecMismatch = errors.New("codec mismatch")
)
