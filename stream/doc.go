// Package stream implements the blocked, parallel encode and decode pipeline
// of the warp format.
//
// # Encode path
//
// Encode partitions the input into fixed-size blocks (the last block may be
// shorter), compresses every block independently with the configured
// single-block codec, and concatenates one frame per block into a single
// output buffer whose exact size is computed before allocation. A block is
// stored compressed only when the compressed form is strictly smaller than
// the original; otherwise the original bytes are stored verbatim, which
// bounds the worst-case output to input size plus one 8-byte header per
// block.
//
// # Decode path
//
// Decode first walks the stream sequentially, validating each frame header
// and recording payload and output offsets in an index; the pass is inherently
// sequential because each frame's position depends on all prior frames. The
// validated index then drives a parallel pass that expands every block
// directly into its disjoint range of a single pre-sized output buffer.
//
// # Concurrency
//
// Both parallel passes fan out over block indices with a greedy worker pool:
// workers claim indices from a shared atomic cursor, so scheduling is
// non-deterministic but placement is by block index and the output is
// byte-identical for any worker count. The only shared mutable state is a
// write-once error signal; once raised, workers stop claiming new blocks,
// in-flight blocks run to completion, and the operation fails as a whole
// after the join. Neither Encode nor Decode ever returns partial output.
package stream
