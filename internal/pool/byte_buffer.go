// Package pool provides a growable byte buffer used as the backing store for
// bitio.BitWriter.
//
// It is adapted from the teacher's internal/pool/byte_buffer_pool.go. Unlike
// that package's ByteBuffer, this one is not drawn from a sync.Pool: a
// BitWriter is single-use and its buffer's ownership transfers permanently to
// the caller on Close, so pooling the underlying array would risk a caller
// holding a slice into memory the pool hands out to someone else.
package pool

// DefaultSize is the initial capacity allocated for a new ByteBuffer.
const DefaultSize = 64

// ByteBuffer is a growable byte slice with amortized-doubling growth.
type ByteBuffer struct {
	B []byte
}

// New creates a ByteBuffer with the given initial capacity.
func New(initialCap int) *ByteBuffer {
	if initialCap <= 0 {
		initialCap = DefaultSize
	}

	return &ByteBuffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can accept n more bytes without reallocating,
// doubling capacity (or more, if n demands it) each time it must reallocate.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	newCap := cap(bb.B) * 2
	if newCap < len(bb.B)+n {
		newCap = len(bb.B) + n
	}
	if newCap < DefaultSize {
		newCap = DefaultSize
	}

	grown := make([]byte, len(bb.B), newCap)
	copy(grown, bb.B)
	bb.B = grown
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the backing
// array first if necessary. The newly exposed bytes are zero-initialized.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start : start+n]
}
