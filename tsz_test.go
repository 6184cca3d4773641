package tsz

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsz/bitio"
)

func encodeAll(baseTime uint64, points []DataPoint) []byte {
	w := bitio.NewBitWriter()
	enc := NewEncoder(baseTime, w)
	for _, p := range points {
		enc.Encode(p)
	}

	return enc.Close()
}

func decodeAll(t *testing.T, data []byte) []DataPoint {
	t.Helper()

	r := bitio.NewBitReader(data)
	dec, err := NewDecoder[*bitio.BitReader](r)
	require.NoError(t, err)

	var out []DataPoint
	for {
		p, err := dec.Next()
		if errors.Is(err, ErrEndOfStream) {
			break
		}
		require.NoError(t, err)
		out = append(out, p)
	}

	return out
}

func TestScenario_BareHeader(t *testing.T) {
	got := encodeAll(1482268055, nil)
	want := []byte{0, 0, 0, 0, 88, 89, 157, 151, 240, 0, 0, 0, 0}
	require.Equal(t, want, got)

	r := bitio.NewBitReader(got)
	dec, err := NewDecoder[*bitio.BitReader](r)
	require.NoError(t, err)

	_, err = dec.Next()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestScenario_SinglePoint(t *testing.T) {
	points := []DataPoint{{Time: 1482268065, Value: 1.24}}
	got := encodeAll(1482268055, points)

	want := []byte{
		0, 0, 0, 0, 88, 89, 157, 151,
		0, 20, 127, 231, 174, 20, 122, 225, 71,
		175, 224, 0, 0, 0, 0,
	}
	require.Equal(t, want, got)

	decoded := decodeAll(t, got)
	require.Equal(t, points, decoded)
}

func TestScenario_FivePointsMixedSigns(t *testing.T) {
	base := uint64(1482268055)
	points := []DataPoint{
		{Time: base + 10, Value: 1.24},
		{Time: base + 20, Value: 1.98},
		{Time: base + 32, Value: 2.37},
		{Time: base + 44, Value: -7.41},
		{Time: base + 52, Value: 103.50},
	}

	got := encodeAll(base, points)
	want := []byte{
		0, 0, 0, 0, 88, 89, 157, 151, 0, 20, 127, 231, 174, 20, 122, 225, 71, 174, 204,
		207, 30, 71, 145, 228, 121, 30, 96, 88, 61, 255, 253, 91, 214, 245, 189, 111,
		91, 3, 232, 1, 245, 97, 88, 86, 21, 133, 55, 202, 1, 17, 15, 92, 40, 245, 194,
		151, 128, 0, 0, 0, 0,
	}
	require.Equal(t, want, got)

	decoded := decodeAll(t, got)
	require.Equal(t, points, decoded)
}

func TestScenario_SixteenPointTrace(t *testing.T) {
	base := uint64(1482892260)
	points := []DataPoint{
		{Time: 1482892270, Value: 1.76},
		{Time: 1482892280, Value: 7.78},
		{Time: 1482892288, Value: 7.95},
		{Time: 1482892292, Value: 5.53},
		{Time: 1482892310, Value: 4.41},
		{Time: 1482892323, Value: 5.30},
		{Time: 1482892334, Value: 5.30},
		{Time: 1482892341, Value: 2.92},
		{Time: 1482892350, Value: 0.73},
		{Time: 1482892360, Value: -1.33},
		{Time: 1482892370, Value: -1.78},
		{Time: 1482892390, Value: -12.45},
		{Time: 1482892401, Value: -34.76},
		{Time: 1482892490, Value: 78.9},
		{Time: 1482892500, Value: 335.67},
		{Time: 1482892800, Value: 12908.12},
	}

	got := encodeAll(base, points)
	decoded := decodeAll(t, got)
	require.Equal(t, points, decoded)
}

func TestScenario_NaNPreservation(t *testing.T) {
	points := []DataPoint{
		{Time: 100, Value: math.NaN()},
		{Time: 110, Value: math.NaN()},
		{Time: 125, Value: 3.5},
	}

	got := encodeAll(100, points)
	decoded := decodeAll(t, got)

	require.Len(t, decoded, len(points))
	for i := range points {
		require.True(t, points[i].Equal(decoded[i]))
	}
}

func TestScenario_CorruptionDetected(t *testing.T) {
	got := encodeAll(1482268055, nil)

	// Flip a middle bit of the end marker's first byte (240 = 0b11110000,
	// the byte right after the header). The leading 1111 prefix still
	// reads as "end marker attempt", but the flipped bit makes the full
	// 36-bit value disagree with the expected marker.
	corrupt := append([]byte(nil), got...)
	corrupt[8] ^= 0b00001000

	r := bitio.NewBitReader(corrupt)
	dec, err := NewDecoder[*bitio.BitReader](r)
	require.NoError(t, err)

	_, err = dec.Next()
	require.ErrorIs(t, err, ErrInvalidEndOfStream)
}

func TestRoundTrip_RandomSeries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 20 {
		n := rng.Intn(200)
		base := uint64(1600000000)

		points := make([]DataPoint, n)
		ts := base
		for i := range n {
			ts += uint64(rng.Intn(5000))
			points[i] = DataPoint{Time: ts, Value: rng.NormFloat64() * 100}
		}

		got := encodeAll(base, points)
		decoded := decodeAll(t, got)

		require.Len(t, decoded, n, "trial %d", trial)
		for i := range points {
			require.True(t, points[i].Equal(decoded[i]), "trial %d point %d", trial, i)
		}
	}
}

func TestDodBoundaries(t *testing.T) {
	boundaries := []int64{0, 64, -63, 65, -64, 256, -255, 257, -256, 2048, -2047, 2049, -2048}

	for _, dod := range boundaries {
		base := uint64(1000)
		delta0 := uint64(100)
		t1 := base + delta0
		t2 := uint64(int64(t1) + int64(delta0) + dod) //nolint:gosec // test-only synthetic timestamp arithmetic

		points := []DataPoint{
			{Time: t1, Value: 1},
			{Time: t2, Value: 2},
		}

		got := encodeAll(base, points)
		decoded := decodeAll(t, got)
		require.Equal(t, points, decoded, "dod=%d", dod)
	}
}

func TestDecoder_TerminalIdempotence(t *testing.T) {
	got := encodeAll(5, []DataPoint{{Time: 15, Value: 2}})

	r := bitio.NewBitReader(got)
	dec, err := NewDecoder[*bitio.BitReader](r)
	require.NoError(t, err)

	_, err = dec.Next()
	require.NoError(t, err)

	_, err = dec.Next()
	require.ErrorIs(t, err, ErrEndOfStream)

	for range 5 {
		_, err = dec.Next()
		require.ErrorIs(t, err, ErrEndOfStream)
	}
}

func TestNewDecoder_ShortHeaderFails(t *testing.T) {
	r := bitio.NewBitReader([]byte{1, 2, 3})

	_, err := NewDecoder[*bitio.BitReader](r)
	require.ErrorIs(t, err, ErrInvalidInitialTimestamp)
}
