package bitio

import (
	"encoding/binary"

	"github.com/arloliu/tsz/internal/pool"
)

// Writer is the capability set Encoder needs from a bit sink. BitWriter is
// the concrete implementation; it is exported as an interface so Encoder can
// be instantiated over any compatible type (see the package doc on Encoder).
type Writer interface {
	WriteBit(b Bit)
	WriteByte(x byte)
	WriteBits(value uint64, n int)
	Close() []byte
}

var _ Writer = (*BitWriter)(nil)

// BitWriter appends bits to an owned, growable byte buffer in MSB-first order
// within each byte. It is scoped to a single compression job: Close consumes
// the writer and hands the accumulated bytes to the caller.
//
// Bits accumulate in a 64-bit buffer and are flushed to the byte buffer eight
// at a time; this is an implementation detail, the observable bit sequence is
// exactly what repeated single-bit writes would produce.
type BitWriter struct {
	buf      *pool.ByteBuffer
	bitBuf   uint64
	bitCount int // number of valid bits currently buffered, 0-63
}

// NewBitWriter creates an empty BitWriter.
func NewBitWriter() *BitWriter {
	return &BitWriter{buf: pool.New(pool.DefaultSize)}
}

// WriteBit appends a single bit.
func (w *BitWriter) WriteBit(b Bit) {
	w.bitBuf = (w.bitBuf << 1) | b.Uint64()
	w.bitCount++

	if w.bitCount == 64 {
		w.flush()
	}
}

// WriteByte appends eight bits. It is equivalent to eight consecutive
// WriteBit calls; the byte goes through WriteBits in a single step rather
// than a per-bit loop.
func (w *BitWriter) WriteByte(x byte) {
	w.WriteBits(uint64(x), 8)
}

// WriteBits appends the low n bits of value, most significant of the n first.
// n must be between 0 and 64 inclusive; 0 is a no-op.
func (w *BitWriter) WriteBits(value uint64, n int) {
	if n <= 0 {
		return
	}
	if n > 64 {
		n = 64
	}
	if n < 64 {
		value &= (uint64(1) << n) - 1
	}

	available := 64 - w.bitCount
	if n <= available {
		w.bitBuf = (w.bitBuf << n) | value
		w.bitCount += n

		if w.bitCount == 64 {
			w.flush()
		}

		return
	}

	// Split across the buffer boundary: fill the current buffer with the
	// high bits, flush, then start the next buffer with the remainder.
	high := n - available
	w.bitBuf = (w.bitBuf << available) | (value >> high)
	w.bitCount = 64
	w.flush()

	w.bitBuf = value & ((uint64(1) << high) - 1)
	w.bitCount = high
}

// flush moves any fully or partially accumulated bits into the byte buffer.
// Bits are left-aligned before being written so partial flushes (at Close)
// leave the implicit trailing padding as zero.
func (w *BitWriter) flush() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	aligned := w.bitBuf << (64 - w.bitCount)

	dst := w.buf.ExtendOrGrow(numBytes)
	if numBytes == 8 {
		binary.BigEndian.PutUint64(dst, aligned)
	} else {
		for i := range numBytes {
			dst[i] = byte(aligned >> (56 - i*8))
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// Close consumes the writer and returns the accumulated bytes. Any bits
// pending in the accumulator are flushed first. The writer must not be used
// afterward.
func (w *BitWriter) Close() []byte {
	w.flush()
	out := w.buf.Bytes()
	w.buf = nil

	return out
}
