package stream

import (
	"fmt"

	"github.com/arloliu/warp/compress"
	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/section"
)

// initialIndexCapacity bounds the first index allocation for streams whose
// frame count is unknown; beyond it the index grows amortized-O(1) via append.
const initialIndexCapacity = 1024

// Decode reconstructs the original bytes from a framed stream.
//
// A sequential pass validates every frame header and builds the block index;
// the validated index then drives a parallel pass that expands each block
// into its disjoint range of a single pre-sized output buffer. An empty
// stream decodes to empty output.
//
// The result is byte-identical regardless of the configured concurrency.
// Decode either fully succeeds or returns no data: malformed input fails with
// errs.ErrMalformedStream and a payload that does not expand to its declared
// size fails with errs.ErrCodecMismatch.
func Decode(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	index, outputSize, err := buildIndex(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, outputSize)
	err = forEachBlock(len(index), cfg.concurrency, func(i int) error {
		return decodeBlock(cfg.codec, out, data, index[i])
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// buildIndex walks the stream left to right, validating each frame header and
// recording payload and output offsets. It never touches payload bytes and
// never re-reads consumed input.
//
// The pass is inherently sequential: each frame's position depends on the
// cumulative stored size of all prior frames. Validation failures abort
// immediately; there is no recovery or skip-ahead. Entries come out strictly
// monotonic in both offsets with no gaps or overlaps, which is what makes the
// subsequent parallel pass safe.
func buildIndex(data []byte) ([]section.FrameIndexEntry, int, error) {
	capacity := min(len(data)/section.HeaderSize, initialIndexCapacity)

	var (
		entries    = make([]section.FrameIndexEntry, 0, capacity)
		cursor     int
		outputSize int
	)

	for cursor < len(data) {
		var header section.FrameHeader
		if err := header.Parse(data[cursor:]); err != nil {
			return nil, 0, fmt.Errorf("%w: %d trailing bytes after last frame", errs.ErrMalformedStream, len(data)-cursor)
		}
		if header.OriginalSize > section.MaxBlockSize {
			return nil, 0, fmt.Errorf("%w: block size %d exceeds maximum %d", errs.ErrMalformedStream, header.OriginalSize, section.MaxBlockSize)
		}

		payloadOffset := cursor + section.HeaderSize
		if int(header.StoredSize) > len(data)-payloadOffset {
			return nil, 0, fmt.Errorf("%w: payload of %d bytes exceeds %d remaining", errs.ErrMalformedStream, header.StoredSize, len(data)-payloadOffset)
		}

		entries = append(entries, section.FrameIndexEntry{
			PayloadOffset: payloadOffset,
			OutputOffset:  outputSize,
			StoredSize:    int(header.StoredSize),
			OriginalSize:  int(header.OriginalSize),
		})

		cursor = payloadOffset + int(header.StoredSize)
		outputSize += int(header.OriginalSize)
	}

	return entries, outputSize, nil
}

// decodeBlock expands one indexed block into its output range.
//
// The destination is a full slice expression over the block's own range, so a
// worker structurally cannot write outside it. Raw payloads are copied;
// compressed payloads go through the codec and must expand to exactly the
// declared original size.
func decodeBlock(codec compress.Codec, out, data []byte, entry section.FrameIndexEntry) error {
	payload := data[entry.PayloadOffset : entry.PayloadOffset+entry.StoredSize]
	end := entry.OutputOffset + entry.OriginalSize
	dst := out[entry.OutputOffset:end:end]

	if entry.IsRaw() {
		copy(dst, payload)
		return nil
	}

	if err := codec.DecompressInto(dst, payload); err != nil {
		return fmt.Errorf("%w: block at output offset %d: %v", errs.ErrCodecMismatch, entry.OutputOffset, err)
	}

	return nil
}
