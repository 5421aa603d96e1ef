package section

// FrameIndexEntry records where a single frame's payload lives in the encoded
// stream and where its block belongs in the reconstructed output.
//
// The decoder builds one entry per frame in a single sequential pass, so the
// sequence is strictly monotonic in both PayloadOffset and OutputOffset with
// no gaps or overlaps. That monotonicity is what makes the parallel decode
// safe: every block's output range is disjoint, and each worker receives only
// its own sub-slice.
//
// Entries are in-memory only; all fields use int because offsets into large
// streams can exceed the uint32 range of a single frame header.
type FrameIndexEntry struct {
	// PayloadOffset is the byte position of the frame's payload (after the
	// header) within the encoded stream.
	PayloadOffset int

	// OutputOffset is the byte position of the block within the
	// reconstructed output.
	OutputOffset int

	// StoredSize is the payload length in the encoded stream.
	StoredSize int

	// OriginalSize is the block length in the reconstructed output.
	OriginalSize int
}

// IsRaw reports whether the entry describes a verbatim-stored block.
func (e FrameIndexEntry) IsRaw() bool {
	return e.StoredSize == e.OriginalSize
}
