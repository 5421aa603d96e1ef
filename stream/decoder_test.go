package stream

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/format"
	"github.com/arloliu/warp/section"
)

func TestRoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionLZ4,
		format.CompressionS2,
		format.CompressionZstd,
	}

	profiles := []string{"compressible", "zeros", "random"}
	sizes := []int{1, 10, 4096, 64*1024 + 13}
	blockSizes := []int{1, 4, 4096, 16 * 1024}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			for _, profile := range profiles {
				for _, size := range sizes {
					for _, blockSize := range blockSizes {
						if size > 8*1024 && blockSize < 64 {
							// Tens of thousands of one-byte blocks add time
							// without adding coverage.
							continue
						}
						data := generateTestData(size, profile)

						encoded, err := Encode(data, blockSize, WithCompression(compression))
						require.NoError(t, err)

						decoded, err := Decode(encoded, WithCompression(compression))
						require.NoError(t, err)
						require.True(t, bytes.Equal(data, decoded),
							"%s profile=%s size=%d blockSize=%d", compression, profile, size, blockSize)
					}
				}
			}
		})
	}
}

func TestRoundTripLargeInput(t *testing.T) {
	require := require.New(t)

	// Digest comparison keeps the failure output sane for multi-MiB buffers.
	for _, profile := range []string{"compressible", "random"} {
		data := generateTestData(8*1024*1024, profile)

		encoded, err := Encode(data, 256*1024)
		require.NoError(err)

		decoded, err := Decode(encoded)
		require.NoError(err)
		require.Equal(len(data), len(decoded))
		require.Equal(xxhash.Sum64(data), xxhash.Sum64(decoded), "profile=%s", profile)
	}
}

func TestDecodeEmptyStream(t *testing.T) {
	require := require.New(t)

	decoded, err := Decode(nil)
	require.NoError(err)
	require.Empty(decoded)

	decoded, err = Decode([]byte{})
	require.NoError(err)
	require.Empty(decoded)
}

func TestDecodeDeterministicAcrossWorkerCounts(t *testing.T) {
	require := require.New(t)

	data := generateTestData(1024*1024, "compressible")
	encoded, err := Encode(data, 64*1024)
	require.NoError(err)

	sequential, err := Decode(encoded, WithConcurrency(1))
	require.NoError(err)
	require.True(bytes.Equal(data, sequential))

	for _, workers := range []int{2, 4, 7, 32} {
		parallel, err := Decode(encoded, WithConcurrency(workers))
		require.NoError(err)
		require.True(bytes.Equal(sequential, parallel), "workers=%d", workers)
	}
}

func TestDecodeTrailingGarbage(t *testing.T) {
	require := require.New(t)

	data := generateTestData(4096, "compressible")
	encoded, err := Encode(data, 1024)
	require.NoError(err)

	// One extra byte after a valid stream must fail, never be ignored.
	_, err = Decode(append(bytes.Clone(encoded), 0x00))
	require.ErrorIs(err, errs.ErrMalformedStream)
}

func TestDecodeTruncatedStream(t *testing.T) {
	require := require.New(t)

	data := generateTestData(4096, "compressible")
	encoded, err := Encode(data, 1024)
	require.NoError(err)

	// Cutting payload bytes makes the last frame's stored size exceed the
	// remaining input.
	_, err = Decode(encoded[:len(encoded)-1])
	require.ErrorIs(err, errs.ErrMalformedStream)

	// Cutting into a header leaves a partial frame.
	_, err = Decode(encoded[:section.HeaderSize-2])
	require.ErrorIs(err, errs.ErrMalformedStream)
}

func TestDecodeOversizedStoredSize(t *testing.T) {
	require := require.New(t)

	data := generateTestData(4096, "compressible")
	encoded, err := Encode(data, 4096)
	require.NoError(err)

	var h section.FrameHeader
	require.NoError(h.Parse(encoded))

	// Inflate the stored size beyond the bytes remaining after the header.
	corrupted := bytes.Clone(encoded)
	h.StoredSize = uint32(len(encoded)) // larger than remaining payload
	h.Put(corrupted)

	_, err = Decode(corrupted)
	require.ErrorIs(err, errs.ErrMalformedStream)
}

func TestDecodeOversizedOriginalSize(t *testing.T) {
	require := require.New(t)

	// A frame declaring a block larger than MaxBlockSize is rejected before
	// any payload is touched.
	h := section.FrameHeader{OriginalSize: section.MaxBlockSize + 1, StoredSize: 0}

	_, err := Decode(h.Bytes())
	require.ErrorIs(err, errs.ErrMalformedStream)
}

func TestDecodeCodecMismatch(t *testing.T) {
	data := generateTestData(4096, "compressible")
	encoded, err := Encode(data, 4096)
	require.NoError(t, err)

	var h section.FrameHeader
	require.NoError(t, h.Parse(encoded))
	require.False(t, h.IsRaw())

	t.Run("shrunk original size", func(t *testing.T) {
		corrupted := bytes.Clone(encoded)
		shrunk := h
		shrunk.OriginalSize--
		shrunk.Put(corrupted)

		_, err := Decode(corrupted)
		require.ErrorIs(t, err, errs.ErrCodecMismatch)
	})

	t.Run("wrong codec configured", func(t *testing.T) {
		zstdStream, err := Encode(data, 4096, WithCompression(format.CompressionZstd))
		require.NoError(t, err)

		_, err = Decode(zstdStream, WithCompression(format.CompressionLZ4))
		require.ErrorIs(t, err, errs.ErrCodecMismatch)
	})

	t.Run("failing codec", func(t *testing.T) {
		_, err := Decode(encoded, WithCodec(failingCodec{}))
		require.ErrorIs(t, err, errs.ErrCodecMismatch)
	})
}

func TestBuildIndexMonotonicOffsets(t *testing.T) {
	require := require.New(t)

	data := generateTestData(10*1024, "compressible")
	encoded, err := Encode(data, 1024)
	require.NoError(err)

	index, outputSize, err := buildIndex(encoded)
	require.NoError(err)
	require.Len(index, 10)
	require.Equal(len(data), outputSize)

	payloadCursor := section.HeaderSize
	outputCursor := 0
	for i, entry := range index {
		// No gaps, no overlaps, strictly increasing in both offsets.
		require.Equal(payloadCursor, entry.PayloadOffset, "entry %d", i)
		require.Equal(outputCursor, entry.OutputOffset, "entry %d", i)
		require.LessOrEqual(entry.StoredSize, entry.OriginalSize)

		payloadCursor += entry.StoredSize + section.HeaderSize
		outputCursor += entry.OriginalSize
	}
	require.Equal(len(encoded)+section.HeaderSize, payloadCursor)
	require.Equal(len(data), outputCursor)
}

func TestDecodeRawBlocksOnly(t *testing.T) {
	require := require.New(t)

	// A NoOp-encoded stream is all raw frames; decode must not consult the
	// codec at all, so even a failing codec reconstructs it.
	data := generateTestData(4096, "compressible")
	encoded, err := Encode(data, 1024, WithCompression(format.CompressionNone))
	require.NoError(err)

	decoded, err := Decode(encoded, WithCodec(failingCodec{}))
	require.NoError(err)
	require.True(bytes.Equal(data, decoded))
}
