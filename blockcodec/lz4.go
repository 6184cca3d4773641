package blockcodec

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; they carry internal
// match-finder state that is expensive to rebuild per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec favors compression/decompression speed over ratio, suited to
// blocks compressed on the hot write path.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// lz4MaxBufSize bounds how far Decompress will grow its scratch buffer when
// sizeHint is absent or wrong, guarding against unbounded allocation on
// malformed input.
const lz4MaxBufSize = 128 * 1024 * 1024

// Decompress sizes its scratch buffer from sizeHint when the caller has it
// (the common case: the block's original length, recorded alongside the
// compressed bytes), succeeding on the first attempt instead of guessing
// through a growth sequence. Without a usable hint it falls back to
// doubling from a multiple of the compressed length.
func (LZ4Codec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := sizeHint
	if bufSize <= 0 {
		bufSize = len(data) * 4
	}

	for {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize >= lz4MaxBufSize {
			return nil, err
		}

		bufSize *= 2
	}
}
