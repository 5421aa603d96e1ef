package stream

import (
	"fmt"
	"runtime"

	"github.com/arloliu/warp/compress"
	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/format"
	"github.com/arloliu/warp/internal/options"
)

// Option configures Encode and Decode.
type Option = options.Option[*config]

type config struct {
	codec       compress.Codec
	concurrency int
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		codec:       compress.NewLZ4Compressor(),
		concurrency: runtime.GOMAXPROCS(0),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the built-in single-block codec by compression
// type.
//
// The stream format does not record the compression type, so Encode and
// Decode of the same stream must be configured with the same one. The default
// is LZ4 on both sides.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		codec, err := compress.GetCodec(compressionType)
		if err != nil {
			return err
		}
		cfg.codec = codec

		return nil
	})
}

// WithCodec supplies a custom single-block codec.
//
// The codec must round-trip deterministically: DecompressInto must be able to
// reconstruct exactly the bytes Compress consumed. As with WithCompression,
// both sides of a stream must agree on the codec.
func WithCodec(codec compress.Codec) Option {
	return options.New(func(cfg *config) error {
		if codec == nil {
			return fmt.Errorf("%w: nil codec", errs.ErrInvalidCompressionType)
		}
		cfg.codec = codec

		return nil
	})
}

// WithConcurrency sets the number of parallel workers for the block passes.
// The effective worker count never exceeds the number of blocks. The default
// is runtime.GOMAXPROCS(0).
func WithConcurrency(workers int) Option {
	return options.New(func(cfg *config) error {
		if workers <= 0 {
			return fmt.Errorf("concurrency must be positive, got %d", workers)
		}
		cfg.concurrency = workers

		return nil
	})
}
