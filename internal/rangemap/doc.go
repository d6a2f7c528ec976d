// Package rangemap implements single-stage piecewise remapping.
//
// A Table holds disjoint Rules, each moving a half-open source interval by a
// constant signed offset. Points outside every rule pass through unchanged.
//
// # Queries
//
//   - MapPoint converts one value with a binary search over rule starts.
//   - MapRanges converts a set of intervals with a left-to-right sweep that
//     splits each interval at rule boundaries. The cost depends on the number
//     of rules and pieces, never on interval length.
//
// # Validation
//
// All checks happen at construction. NewRule and RuleFromTriple reject
// offsets that would leave the uint64 domain, and NewTable rejects
// overlapping rules. Once a Table exists, every query is total.
package rangemap
