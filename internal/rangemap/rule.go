package rangemap

import (
	"fmt"
	"math"

	"range-remapper/internal/interval"
)

// Rule moves every point of Source by Offset.
type Rule struct {
	Source interval.Interval
	Offset int64
}

// NewRule validates that every point of source stays representable after
// applying offset.
func NewRule(source interval.Interval, offset int64) (Rule, error) {
	r := Rule{Source: source, Offset: offset}

	switch {
	case offset < 0:
		// uint64(-offset) is exact for math.MinInt64 as well.
		if source.Start < uint64(-offset) {
			return Rule{}, &OffsetUnderflowError{Source: source, Offset: offset}
		}
	case offset > 0:
		if source.End > math.MaxUint64-uint64(offset) {
			return Rule{}, &OffsetOverflowError{Source: source, Offset: offset}
		}
	}

	return r, nil
}

// RuleFromTriple builds the rule mapping [sourceStart, sourceStart+length)
// onto [destStart, destStart+length).
func RuleFromTriple(destStart, sourceStart, length uint64) (Rule, error) {
	source, err := interval.FromStartLength(sourceStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rule source: %w", err)
	}

	if _, err := interval.FromStartLength(destStart, length); err != nil {
		return Rule{}, &OffsetOverflowError{Source: source, Dest: destStart}
	}

	var offset int64

	if destStart >= sourceStart {
		d := destStart - sourceStart
		if d > math.MaxInt64 {
			return Rule{}, &OffsetOverflowError{Source: source, Dest: destStart}
		}

		offset = int64(d)
	} else {
		d := sourceStart - destStart
		if d > 1<<63 {
			return Rule{}, &OffsetOverflowError{Source: source, Dest: destStart}
		}

		// int64(1<<63) wraps to math.MinInt64, which is the wanted value.
		offset = -int64(d)
	}

	return NewRule(source, offset)
}

// Apply returns v moved by the rule's offset. v must lie in Source.
func (r Rule) Apply(v uint64) uint64 {
	return v + uint64(r.Offset)
}

// Dest returns the image of Source.
func (r Rule) Dest() interval.Interval {
	return r.Source.Shift(r.Offset)
}

// String formats the rule as its source followed by the signed offset.
func (r Rule) String() string {
	return fmt.Sprintf("%s%+d", r.Source, r.Offset)
}
