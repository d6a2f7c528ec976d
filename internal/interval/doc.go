// Package interval provides half-open numeric spans and sets of them.
//
// An Interval [Start, End) owns Start and excludes End, so adjacent intervals
// such as [1, 4) and [4, 9) share no point. Every producer and consumer of
// intervals in this module follows that convention.
package interval
