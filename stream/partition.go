package stream

import (
	"fmt"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/section"
)

// blockRange is a single partitioner output: one block's contiguous range
// within the input.
type blockRange struct {
	offset int
	length int
}

// validateBlockSize rejects zero, negative, and oversized block sizes.
func validateBlockSize(blockSize int) error {
	if blockSize <= 0 {
		return fmt.Errorf("%w: block size must be positive, got %d", errs.ErrInvalidBlockSize, blockSize)
	}
	if blockSize > section.MaxBlockSize {
		return fmt.Errorf("%w: block size %d exceeds maximum %d", errs.ErrInvalidBlockSize, blockSize, section.MaxBlockSize)
	}

	return nil
}

// numBlocks returns ceil(total / blockSize). Zero-length input has zero
// blocks.
func numBlocks(total, blockSize int) int {
	return (total + blockSize - 1) / blockSize
}

// blockAt returns block i's input range, [i*blockSize, min((i+1)*blockSize, total)).
// Only the last block may be shorter than blockSize.
func blockAt(total, blockSize, i int) blockRange {
	offset := i * blockSize
	length := blockSize
	if offset+length > total {
		length = total - offset
	}

	return blockRange{offset: offset, length: length}
}
