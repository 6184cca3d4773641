package tsz

import (
	"math"
	"math/bits"

	"github.com/arloliu/tsz/bitio"
)

// endMarker is the 36-bit sentinel 1111_0000...0 (32 zero bits after the
// 1111 prefix). A 1111 dod prefix with a 32-bit zero payload can never occur
// in a legally encoded stream: a dod of exactly zero is always encoded with
// the single-bit 0 code, never the 4-bit-prefix/32-bit-payload code. That
// makes this sequence safe to use as an in-band end-of-stream signal.
const (
	endMarker    = 0xF00000000
	endMarkerLen = 36

	// sentinelZeros marks "no XOR window has been opened yet". It is
	// distinct from every real leading/trailing-zero count a non-zero XOR
	// can produce (those are always <= 63), so it cannot be confused with
	// a legitimate window.
	sentinelZeros = 64
)

// Encoder consumes DataPoints in non-decreasing Time order and emits a
// Gorilla-compressed bit stream through W. It is exclusively owned by the
// caller for the duration of one encoding job; Close consumes it.
//
// Encoder is generic over the bit sink so callers can substitute any type
// implementing bitio.Writer (bitio.BitWriter is the concrete implementation
// used in normal operation); this keeps the hot bit-packing loop statically
// dispatched and inlinable rather than going through an interface vtable.
type Encoder[W bitio.Writer] struct {
	writer W

	time      uint64
	delta     uint64
	valueBits uint64

	leadingZeroes  int
	trailingZeroes int

	baseTime uint64
	first    bool
}

// NewEncoder creates an Encoder that writes baseTime as the stream header and
// uses it as the reference point for the first point's delta.
func NewEncoder[W bitio.Writer](baseTime uint64, w W) *Encoder[W] {
	w.WriteBits(baseTime, 64)

	return &Encoder[W]{
		writer:         w,
		time:           baseTime,
		baseTime:       baseTime,
		leadingZeroes:  sentinelZeros,
		trailingZeroes: sentinelZeros,
		first:          true,
	}
}

// Encode appends one point. It never fails; callers must submit points in
// non-decreasing Time order (a decrease wraps the delta silently rather than
// being rejected).
func (e *Encoder[W]) Encode(p DataPoint) {
	if e.first {
		e.encodeFirst(p)
		e.first = false

		return
	}

	e.encodeTimestamp(p.Time)
	e.encodeValue(p.Value)
}

func (e *Encoder[W]) encodeFirst(p DataPoint) {
	delta := p.Time - e.baseTime

	// Control bit 0 distinguishes "stream has payload" from a bare header
	// whose first bit (part of the end marker) is 1.
	e.writer.WriteBit(bitio.Zero)

	// 14 bits bounds the first delta to ~4.5 hours; a larger gap truncates
	// silently, matching the reference Gorilla encoding.
	e.writer.WriteBits(delta, 14)

	valueBits := math.Float64bits(p.Value)
	e.writer.WriteBits(valueBits, 64)

	e.time = p.Time
	e.delta = delta
	e.valueBits = valueBits
}

func (e *Encoder[W]) encodeTimestamp(t uint64) {
	delta := t - e.time
	dod := int32(delta - e.delta) //nolint:gosec // intentional 32-bit two's-complement dod per wire format

	switch {
	case dod == 0:
		e.writer.WriteBit(bitio.Zero)
	case dod >= -63 && dod <= 64:
		e.writer.WriteBits(0b10, 2)
		e.writer.WriteBits(uint64(dod), 7)
	case dod >= -255 && dod <= 256:
		e.writer.WriteBits(0b110, 3)
		e.writer.WriteBits(uint64(dod), 9)
	case dod >= -2047 && dod <= 2048:
		e.writer.WriteBits(0b1110, 4)
		e.writer.WriteBits(uint64(dod), 12)
	default:
		e.writer.WriteBits(0b1111, 4)
		e.writer.WriteBits(uint64(dod), 32)
	}

	e.delta = delta
	e.time = t
}

func (e *Encoder[W]) encodeValue(v float64) {
	valueBits := math.Float64bits(v)
	x := valueBits ^ e.valueBits

	if x == 0 {
		e.writer.WriteBit(bitio.Zero)
		e.valueBits = valueBits

		return
	}

	e.writer.WriteBit(bitio.One)

	lz := bits.LeadingZeros64(x)
	tz := bits.TrailingZeros64(x)

	hasWindow := e.leadingZeroes != sentinelZeros
	if hasWindow && lz >= e.leadingZeroes && tz >= e.trailingZeroes {
		// Reuse the previous window: its block size, not the newly
		// computed one, determines how many meaningful bits follow.
		e.writer.WriteBit(bitio.Zero)
		blockSize := 64 - e.leadingZeroes - e.trailingZeroes
		e.writer.WriteBits(x>>e.trailingZeroes, blockSize)
	} else {
		e.writer.WriteBit(bitio.One)
		e.writer.WriteBits(uint64(lz), 6) //nolint:gosec // lz in [0,63]

		sig := 64 - lz - tz
		e.writer.WriteBits(uint64(sig-1), 6) //nolint:gosec // sig in [1,64]
		e.writer.WriteBits(x>>tz, sig)

		e.leadingZeroes = lz
		e.trailingZeroes = tz
	}

	e.valueBits = valueBits
}

// Close emits the end marker and returns the encoded bytes, consuming the
// encoder and its writer. The Encoder must not be used afterward.
func (e *Encoder[W]) Close() []byte {
	e.writer.WriteBits(endMarker, endMarkerLen)

	return e.writer.Close()
}
