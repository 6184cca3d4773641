// Package digest computes a checksum over a closed Gorilla-encoded block.
// It operates strictly outside the wire format Encoder/Decoder read and
// write: the checksum covers the opaque byte slice Encoder.Close returns, so
// callers can detect corruption (truncated storage, a bit flip in transit)
// before handing bytes to a Decoder rather than discovering it mid-stream as
// a StreamError.
package digest

import "github.com/cespare/xxhash/v2"

// Sum returns the xxHash64 checksum of a closed block's bytes.
func Sum(block []byte) uint64 {
	return xxhash.Sum64(block)
}

// Verify reports whether block's checksum matches want.
func Verify(block []byte, want uint64) bool {
	return Sum(block) == want
}
