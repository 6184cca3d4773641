package blockcodec

import "fmt"

// Compressor compresses a closed block's bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor. sizeHint is the caller's best estimate
// of the decompressed length — in practice the byte length of the block
// before it was compressed, which whoever stored the compressed bytes
// already has on hand. A Gorilla block has no fixed bits-per-point rate (it
// depends on how similar neighboring points are), so a decoded point count
// cannot substitute for it; the original byte length can. Pass 0 when the
// length truly is not available; every implementation still produces
// correct output, just with more reallocation.
type Decompressor interface {
	Decompress(data []byte, sizeHint int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies a registered Codec.
type Algorithm int

const (
	None Algorithm = iota
	LZ4
	S2
	Zstd
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case S2:
		return "s2"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("blockcodec.Algorithm(%d)", int(a))
	}
}

var builtin = map[Algorithm]Codec{
	None: NoOp{},
	LZ4:  LZ4Codec{},
	S2:   S2Codec{},
	Zstd: ZstdCodec{},
}

// Get returns the built-in Codec for algo.
func Get(algo Algorithm) (Codec, error) {
	codec, ok := builtin[algo]
	if !ok {
		return nil, fmt.Errorf("blockcodec: unsupported algorithm %s", algo)
	}

	return codec, nil
}
