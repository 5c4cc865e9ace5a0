package rangemap

import (
	"fmt"
	"math"
)

// ID is a value of the mapped domain.
type ID = int64

// MaxID is the largest representable ID. DefaultDomain uses it as bound.
const MaxID ID = math.MaxInt64

// Interval is a half-open range [Start, End).
type Interval struct {
	Start ID
	End   ID
}

// NewInterval returns [start, start+length).
func NewInterval(start, length ID) Interval {
	return Interval{Start: start, End: start + length}
}

// Len returns the number of values in the interval.
func (i Interval) Len() ID {
	return i.End - i.Start
}

// IsEmpty returns true if the interval holds no value.
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Contains reports whether Start <= x < End.
func (i Interval) Contains(x ID) bool {
	return i.Start <= x && x < i.End
}

// Overlap returns the common part of i and o.
// Touching intervals ([0,5) and [5,8)) do not overlap.
func (i Interval) Overlap(o Interval) (Interval, bool) {
	res := Interval{
		Start: max(i.Start, o.Start),
		End:   min(i.End, o.End),
	}
	if res.Start >= res.End {
		return Interval{}, false
	}

	return res, true
}

// Shift moves both bounds by delta.
func (i Interval) Shift(delta ID) Interval {
	return Interval{Start: i.Start + delta, End: i.End + delta}
}

// String formats the interval as "[start,end)". The domain maximum is
// printed as MAX.
func (i Interval) String() string {
	return "[" + formatID(i.Start) + "," + formatID(i.End) + ")"
}

func formatID(v ID) string {
	if v == MaxID {
		return "MAX"
	}

	return fmt.Sprintf("%d", v)
}
