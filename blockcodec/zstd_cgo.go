//go:build cgo

package blockcodec

import "github.com/valyala/gozstd"

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress passes a zero-length, sizeHint-capacity slice as the append
// target, mirroring zstd_pure.go's use of the hint.
func (ZstdCodec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var dst []byte
	if sizeHint > 0 {
		dst = make([]byte, 0, sizeHint)
	}

	return gozstd.Decompress(dst, data)
}
