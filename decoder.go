package tsz

import (
	"math"

	"github.com/arloliu/tsz/bitio"
)

// Decoder reads points back out of a stream produced by Encoder, mirroring
// its state machine exactly. It is generic over the bit source for the same
// reason Encoder is generic over the sink: see the package doc.
type Decoder[R bitio.Reader] struct {
	reader R

	time      uint64
	delta     uint64
	valueBits uint64

	leadingZeroes  int
	trailingZeroes int

	baseTime uint64
	first    bool
	done     bool
}

// NewDecoder reads the 64-bit header from r and returns a Decoder ready to
// produce points via Next. It fails with ErrInvalidInitialTimestamp if the
// header cannot be read in full.
func NewDecoder[R bitio.Reader](r R) (*Decoder[R], error) {
	header, err := r.ReadBits(64)
	if err != nil {
		return nil, ErrInvalidInitialTimestamp
	}

	return &Decoder[R]{
		reader:         r,
		time:           header,
		baseTime:       header,
		leadingZeroes:  sentinelZeros,
		trailingZeroes: sentinelZeros,
		first:          true,
	}, nil
}

// Next returns the next DataPoint in the stream. Once the stream is
// exhausted it returns ErrEndOfStream on every subsequent call; callers
// should loop with errors.Is(err, ErrEndOfStream) as the termination check.
func (d *Decoder[R]) Next() (DataPoint, error) {
	if d.done {
		return DataPoint{}, ErrEndOfStream
	}

	if d.first {
		return d.decodeFirst()
	}

	return d.decodeNext()
}

func (d *Decoder[R]) decodeFirst() (DataPoint, error) {
	ctrl, err := d.reader.ReadBit()
	if err != nil {
		return DataPoint{}, wrapStreamErr(err)
	}

	if ctrl == bitio.One {
		return DataPoint{}, d.finishEndMarker()
	}

	delta, err := d.reader.ReadBits(14)
	if err != nil {
		return DataPoint{}, wrapStreamErr(err)
	}

	valueBits, err := d.reader.ReadBits(64)
	if err != nil {
		return DataPoint{}, wrapStreamErr(err)
	}

	d.time = d.baseTime + delta
	d.delta = delta
	d.valueBits = valueBits
	d.first = false

	return DataPoint{Time: d.time, Value: math.Float64frombits(valueBits)}, nil
}

// finishEndMarker consumes the 35 remaining bits of an end marker whose
// leading 1 bit has already been read, verifying the full 36-bit value.
func (d *Decoder[R]) finishEndMarker() error {
	rest, err := d.reader.ReadBits(35)
	if err != nil {
		return wrapStreamErr(err)
	}

	if (uint64(1)<<35)|rest != endMarker {
		return ErrInvalidEndOfStream
	}

	d.done = true

	return ErrEndOfStream
}

func (d *Decoder[R]) decodeNext() (DataPoint, error) {
	dod, isEnd, err := d.decodeDod()
	if err != nil {
		return DataPoint{}, err
	}

	if isEnd {
		d.done = true

		return DataPoint{}, ErrEndOfStream
	}

	newDelta := d.delta + uint64(dod)
	newTime := d.time + newDelta
	d.delta = newDelta
	d.time = newTime

	value, err := d.decodeValue()
	if err != nil {
		return DataPoint{}, err
	}

	return DataPoint{Time: newTime, Value: value}, nil
}

// decodeDod reads one dod-of-delta code and returns its signed value. A
// 1111 prefix followed by a 32-bit zero payload is the end marker, not a
// real dod — the encoder never emits that combination for an actual value
// since dod == 0 always takes the single-bit code.
func (d *Decoder[R]) decodeDod() (dod int32, isEnd bool, err error) {
	b1, err := d.reader.ReadBit()
	if err != nil {
		return 0, false, wrapStreamErr(err)
	}
	if b1 == bitio.Zero {
		return 0, false, nil
	}

	b2, err := d.reader.ReadBit()
	if err != nil {
		return 0, false, wrapStreamErr(err)
	}
	if b2 == bitio.Zero {
		payload, err := d.reader.ReadBits(7)
		if err != nil {
			return 0, false, wrapStreamErr(err)
		}

		return signExtend(payload, 7), false, nil
	}

	b3, err := d.reader.ReadBit()
	if err != nil {
		return 0, false, wrapStreamErr(err)
	}
	if b3 == bitio.Zero {
		payload, err := d.reader.ReadBits(9)
		if err != nil {
			return 0, false, wrapStreamErr(err)
		}

		return signExtend(payload, 9), false, nil
	}

	b4, err := d.reader.ReadBit()
	if err != nil {
		return 0, false, wrapStreamErr(err)
	}
	if b4 == bitio.Zero {
		payload, err := d.reader.ReadBits(12)
		if err != nil {
			return 0, false, wrapStreamErr(err)
		}

		return signExtend(payload, 12), false, nil
	}

	payload, err := d.reader.ReadBits(32)
	if err != nil {
		return 0, false, wrapStreamErr(err)
	}
	if payload == 0 {
		return 0, true, nil
	}

	return int32(payload), false, nil //nolint:gosec // payload is exactly 32 bits
}

// signExtend interprets the low bits of value as a signed dod and widens it
// to int32. A payload greater than 1<<(bits-1) is negative (two's
// complement); a payload of exactly 1<<(bits-1) is the positive upper bound
// of the encoder's asymmetric ranges (+64, +256, +2048).
func signExtend(value uint64, bits int) int32 {
	if value > uint64(1)<<(bits-1) {
		value |= ^uint64(0) << bits
	}

	return int32(int64(value)) //nolint:gosec // value fits in int32 after sign extension
}

func (d *Decoder[R]) decodeValue() (float64, error) {
	ctrl, err := d.reader.ReadBit()
	if err != nil {
		return 0, wrapStreamErr(err)
	}
	if ctrl == bitio.Zero {
		return math.Float64frombits(d.valueBits), nil
	}

	reuse, err := d.reader.ReadBit()
	if err != nil {
		return 0, wrapStreamErr(err)
	}

	lz, tz := d.leadingZeroes, d.trailingZeroes
	if reuse == bitio.One {
		lzVal, err := d.reader.ReadBits(6)
		if err != nil {
			return 0, wrapStreamErr(err)
		}

		sigVal, err := d.reader.ReadBits(6)
		if err != nil {
			return 0, wrapStreamErr(err)
		}

		lz = int(lzVal)
		sig := int(sigVal) + 1
		tz = 64 - lz - sig

		d.leadingZeroes = lz
		d.trailingZeroes = tz
	}

	blockSize := 64 - lz - tz

	bits, err := d.reader.ReadBits(blockSize)
	if err != nil {
		return 0, wrapStreamErr(err)
	}

	d.valueBits ^= bits << tz

	return math.Float64frombits(d.valueBits), nil
}
