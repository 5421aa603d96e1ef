package section

const (
	// HeaderSize is the fixed per-frame header size in bytes:
	// OriginalSize (4 bytes) followed by StoredSize (4 bytes).
	HeaderSize = 8

	// MaxBlockSize is the largest original block size a frame may declare.
	// It keeps block sizes representable in the 32-bit header field and
	// bounds the worst-case memory a single block can demand on decode.
	MaxBlockSize = 512 * 1024 * 1024 // 512MiB
)
