package tsz

import "math"

// DataPoint is a single (timestamp, value) measurement. Equality on Value
// treats any NaN as equal to any other NaN sharing the same Time, matching
// this codec's convention that NaN is a single "missing" sentinel. Ordering
// is by Time only.
type DataPoint struct {
	Time  uint64
	Value float64
}

// Equal reports whether two DataPoints are bitwise equal on Time, and equal
// on Value under the NaN-as-sentinel convention.
func (d DataPoint) Equal(other DataPoint) bool {
	if d.Time != other.Time {
		return false
	}
	if math.IsNaN(d.Value) {
		return math.IsNaN(other.Value)
	}

	return d.Value == other.Value
}

// Compare orders two DataPoints by Time only, returning a negative number,
// zero, or a positive number as d's Time is less than, equal to, or greater
// than other's.
func (d DataPoint) Compare(other DataPoint) int {
	switch {
	case d.Time < other.Time:
		return -1
	case d.Time > other.Time:
		return 1
	default:
		return 0
	}
}

// ByTime implements sort.Interface for a slice of DataPoints ordered by
// Time. Encoder requires its input in non-decreasing Time order; callers
// holding unordered points can run sort.Sort(ByTime(points)) first.
type ByTime []DataPoint

func (s ByTime) Len() int { return len(s) }

func (s ByTime) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }

func (s ByTime) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
