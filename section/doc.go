// Package section defines the low-level binary structures and constants of
// the warp framed stream format.
//
// A warp stream is a plain concatenation of frames with no stream header,
// footer, magic number, or checksum:
//
//	┌───────────────────────────────────────────────┐
//	│ Frame 0                                       │
//	│  - OriginalSize (4 bytes, little-endian)      │
//	│  - StoredSize   (4 bytes, little-endian)      │
//	│  - Payload      (StoredSize bytes)            │
//	├───────────────────────────────────────────────┤
//	│ Frame 1 ...                                   │
//	└───────────────────────────────────────────────┘
//
// The payload is a verbatim copy of the block's original bytes when
// StoredSize == OriginalSize, and single-block-codec compressed data
// otherwise. There is no separate flag byte; the size equality is the
// discriminator, which the encoder keeps unambiguous by storing a block
// compressed only when the compressed form is strictly smaller.
//
// The package also defines FrameIndexEntry, the in-memory record the decoder
// builds per frame during its sequential index pass. Entries are transient
// and never serialized.
package section
