package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when an interval end does not fit in a uint64.
var ErrOverflow = errors.New("interval end overflows uint64")

// Interval is the half-open span [Start, End).
type Interval struct {
	Start uint64
	End   uint64
}

// New returns [start, end). It panics if start > end.
func New(start, end uint64) Interval {
	if start > end {
		panic(fmt.Sprintf("interval: start %d is greater than end %d", start, end))
	}

	return Interval{Start: start, End: end}
}

// FromStartLength returns [start, start+length).
func FromStartLength(start, length uint64) (Interval, error) {
	if length > math.MaxUint64-start {
		return Interval{}, fmt.Errorf("start %d, length %d: %w", start, length, ErrOverflow)
	}

	return Interval{Start: start, End: start + length}, nil
}

// Len returns the number of points in the interval.
func (i Interval) Len() uint64 {
	return i.End - i.Start
}

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}

// Contains reports whether v lies in [Start, End).
func (i Interval) Contains(v uint64) bool {
	return i.Start <= v && v < i.End
}

// Overlaps reports whether the two intervals share at least one point.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End && !i.IsEmpty() && !o.IsEmpty()
}

// Intersect returns the common part of both intervals. The result is empty
// (and anchored at the larger start) when they do not overlap.
func (i Interval) Intersect(o Interval) Interval {
	start := max(i.Start, o.Start)
	end := min(i.End, o.End)

	return Interval{Start: start, End: max(start, end)}
}

// Shift moves both bounds by offset using two's-complement arithmetic.
// Callers guarantee the shifted bounds stay within [0, MaxUint64].
func (i Interval) Shift(offset int64) Interval {
	return Interval{Start: i.Start + uint64(offset), End: i.End + uint64(offset)}
}

// String formats the interval as [start, end).
func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
