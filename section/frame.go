package section

import (
	"github.com/arloliu/warp/endian"
	"github.com/arloliu/warp/errs"
)

// FrameHeader is the fixed 8-byte header preceding every block payload.
//
// Both fields are encoded little-endian. The stream format carries no
// endianness flag, so the byte order is fixed and part of the format.
type FrameHeader struct {
	// OriginalSize is the uncompressed size of the block in bytes.
	//
	// Offset: 0, Size: 4 bytes
	OriginalSize uint32

	// StoredSize is the size of the payload as stored in the stream.
	// Equal to OriginalSize for raw-stored blocks, smaller for compressed
	// blocks.
	//
	// Offset: 4, Size: 4 bytes
	StoredSize uint32
}

// engine is the fixed byte order of the frame format.
var engine = endian.GetLittleEndianEngine()

// IsRaw reports whether the frame's payload is a verbatim copy of the
// original block bytes. The size equality is the format's only
// compressed/raw discriminator.
func (h FrameHeader) IsRaw() bool {
	return h.StoredSize == h.OriginalSize
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than HeaderSize.
// Extra bytes after the header are ignored, so the decoder can pass its
// cursor slice directly.
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.OriginalSize = engine.Uint32(data[0:4])
	h.StoredSize = engine.Uint32(data[4:8])

	return nil
}

// Put serializes the header into the first HeaderSize bytes of dst.
// dst must be at least HeaderSize bytes long.
func (h FrameHeader) Put(dst []byte) {
	engine.PutUint32(dst[0:4], h.OriginalSize)
	engine.PutUint32(dst[4:8], h.StoredSize)
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h FrameHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)

	return b
}
