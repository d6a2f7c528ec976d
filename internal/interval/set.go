package interval

import (
	"slices"
	"strings"
)

// Set is a collection of intervals. Sets produced by a single sweep are
// pairwise disjoint; Coalesce restores sorted order and merges neighbours.
type Set []Interval

// TotalLen returns the sum of the lengths of all intervals.
func (s Set) TotalLen() uint64 {
	var n uint64
	for _, iv := range s {
		n += iv.Len()
	}

	return n
}

// Min returns the smallest point covered by the set, or false when the set
// covers nothing.
func (s Set) Min() (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)

	for _, iv := range s {
		if iv.IsEmpty() {
			continue
		}

		if !found || iv.Start < lowest {
			lowest = iv.Start
			found = true
		}
	}

	return lowest, found
}

// Contains reports whether any interval of the set contains v.
func (s Set) Contains(v uint64) bool {
	for _, iv := range s {
		if iv.Contains(v) {
			return true
		}
	}

	return false
}

// Coalesce returns a new set sorted by Start in which overlapping or touching
// intervals are merged and empty intervals are removed. The covered points
// are unchanged.
func (s Set) Coalesce() Set {
	if len(s) == 0 {
		return nil
	}

	sorted := make(Set, 0, len(s))
	for _, iv := range s {
		if !iv.IsEmpty() {
			sorted = append(sorted, iv)
		}
	}

	slices.SortFunc(sorted, func(a, b Interval) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	out := sorted[:0]
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}

		out = append(out, iv)
	}

	return out
}

// String formats the set as a space separated list of intervals.
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}
