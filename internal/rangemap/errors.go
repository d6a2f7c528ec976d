package rangemap

import (
	"fmt"

	"range-remapper/internal/category"
	"range-remapper/internal/interval"
)

// OverlappingRuleError reports two rules of one table whose sources share
// at least one point.
type OverlappingRuleError struct {
	From, To    category.ID
	First, Next Rule
}

func (e *OverlappingRuleError) Error() string {
	return fmt.Sprintf("table %d->%d: rule %s overlaps rule %s", e.From, e.To, e.First, e.Next)
}

// OffsetUnderflowError reports a rule that would map part of its source
// below zero.
type OffsetUnderflowError struct {
	Source interval.Interval
	Offset int64
}

func (e *OffsetUnderflowError) Error() string {
	return fmt.Sprintf("offset %d underflows source %s", e.Offset, e.Source)
}

// OffsetOverflowError reports a rule whose destination does not fit in a
// uint64, or whose offset cannot be represented as an int64. Offset is zero
// when the rule was rejected before an offset could be derived.
type OffsetOverflowError struct {
	Source interval.Interval
	Dest   uint64
	Offset int64
}

func (e *OffsetOverflowError) Error() string {
	if e.Offset == 0 {
		return fmt.Sprintf("source %s cannot be mapped onto destination %d", e.Source, e.Dest)
	}

	return fmt.Sprintf("offset %d overflows source %s", e.Offset, e.Source)
}
