package tsz

import (
	"github.com/arloliu/tsz/blockcodec"
	"github.com/arloliu/tsz/internal/digest"
)

// Checksum returns an xxHash64 checksum of a closed block, as returned by
// Encoder.Close. Store it alongside the block to detect corruption before
// handing bytes to a Decoder.
func Checksum(block []byte) uint64 {
	return digest.Sum(block)
}

// VerifyChecksum reports whether block matches a checksum previously
// produced by Checksum.
func VerifyChecksum(block []byte, want uint64) bool {
	return digest.Verify(block, want)
}

// CompressBlock applies a secondary, algorithm-level compression pass to a
// closed block's bytes. It has no bearing on the Gorilla wire format itself;
// DecompressBlock with the same algorithm must run before the result is
// handed to a Decoder.
//
// CompressBlock also returns the block's original length. Callers must
// retain it alongside the compressed bytes and pass it back into
// DecompressBlock, which uses it to presize its decompression buffer
// instead of guessing.
func CompressBlock(block []byte, algo blockcodec.Algorithm) (compressed []byte, originalLen int, err error) {
	codec, err := blockcodec.Get(algo)
	if err != nil {
		return nil, 0, err
	}

	compressed, err = codec.Compress(block)
	if err != nil {
		return nil, 0, err
	}

	return compressed, len(block), nil
}

// DecompressBlock reverses CompressBlock. originalLen should be the value
// CompressBlock returned; pass 0 if it was not retained.
func DecompressBlock(data []byte, algo blockcodec.Algorithm, originalLen int) ([]byte, error) {
	codec, err := blockcodec.Get(algo)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data, originalLen)
}
