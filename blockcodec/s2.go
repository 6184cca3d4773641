package blockcodec

import "github.com/klauspost/compress/s2"

// S2Codec is Snappy-compatible and tuned for throughput over ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress preallocates its destination to sizeHint bytes when given one,
// so s2.Decode can fill it in place rather than allocating its own buffer
// once it reads the encoded length from the stream header.
func (S2Codec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var dst []byte
	if sizeHint > 0 {
		dst = make([]byte, sizeHint)
	}

	return s2.Decode(dst, data)
}
