package stream

import (
	"bytes"

	"github.com/arloliu/warp/compress"
	"github.com/arloliu/warp/section"
)

// blockDescriptor is the encode-side record for one block, created by the
// parallel pass and consumed by the frame writer.
//
// payload holds either an exactly-sized compressed buffer or, for raw-stored
// blocks, a sub-slice of the original input. Raw blocks are detected by
// len(payload) == originalSize; the writer is the single copy point for both
// cases.
type blockDescriptor struct {
	originalSize int
	payload      []byte
}

// Encode compresses data into a framed stream using the given block size.
//
// Every block is processed independently and in parallel; blocks whose
// compressed form is not strictly smaller than the original are stored
// verbatim, so the output never exceeds
// len(data) + numBlocks*section.HeaderSize bytes. Empty input produces an
// empty stream.
//
// The result is byte-identical regardless of the configured concurrency.
// Encode either fully succeeds or returns no data.
func Encode(data []byte, blockSize int, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := validateBlockSize(blockSize); err != nil {
		return nil, err
	}

	blocks := numBlocks(len(data), blockSize)
	descriptors := make([]blockDescriptor, blocks)

	err = forEachBlock(blocks, cfg.concurrency, func(i int) error {
		r := blockAt(len(data), blockSize, i)
		descriptors[i] = encodeBlock(cfg.codec, data[r.offset:r.offset+r.length])

		return nil
	})
	if err != nil {
		return nil, err
	}

	return writeFrames(descriptors), nil
}

// encodeBlock compresses one block, falling back to the raw-store path when
// compression fails, produces nothing, or does not strictly shrink the block.
//
// The strict inequality keeps the frame discriminator unambiguous: a stored
// size equal to the original size always means a verbatim payload.
func encodeBlock(codec compress.Codec, block []byte) blockDescriptor {
	compressed, err := codec.Compress(block)
	if err == nil && len(compressed) > 0 && len(compressed) < len(block) {
		if cap(compressed) > len(compressed) {
			// Never carry a codec's bound-sized scratch through to the writer.
			compressed = bytes.Clone(compressed)
		}

		return blockDescriptor{originalSize: len(block), payload: compressed}
	}

	// Raw store: the payload aliases the input until the writer copies it.
	return blockDescriptor{originalSize: len(block), payload: block}
}

// writeFrames serializes all frames in block order into one buffer.
//
// The exact total size is summed up front and the buffer allocated once, so
// the write phase performs no reallocation and each frame lands at its
// precomputed offset. Descriptors are consumed as they are written.
func writeFrames(descriptors []blockDescriptor) []byte {
	total := 0
	for i := range descriptors {
		total += section.HeaderSize + len(descriptors[i].payload)
	}

	out := make([]byte, total)
	offset := 0
	for i := range descriptors {
		d := &descriptors[i]
		header := section.FrameHeader{
			OriginalSize: uint32(d.originalSize),
			StoredSize:   uint32(len(d.payload)),
		}
		header.Put(out[offset:])
		copy(out[offset+section.HeaderSize:], d.payload)
		offset += section.HeaderSize + len(d.payload)
		d.payload = nil
	}

	return out
}
