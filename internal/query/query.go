// Package query reduces pipeline results to the minimum reachable value,
// either for a list of points or for a list of input intervals.
package query

import (
	"errors"
	"fmt"

	"range-remapper/internal/interval"
)

// ErrEmptyInput is matched by errors.Is for every EmptyInputError.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputError reports an aggregate query with nothing to reduce.
type EmptyInputError struct {
	Query string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Query, ErrEmptyInput)
}

// Is lets errors.Is match ErrEmptyInput.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// Runner is the part of a pipeline the queries need.
type Runner interface {
	RunPoint(v uint64) uint64
	RunRanges(in interval.Set) interval.Set
}

// MinOverPoints runs every value through r and returns the smallest result.
func MinOverPoints(r Runner, values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, &EmptyInputError{Query: "min over points"}
	}

	lowest := r.RunPoint(values[0])
	for _, v := range values[1:] {
		lowest = min(lowest, r.RunPoint(v))
	}

	return lowest, nil
}

// MinOverRanges runs the intervals through r and returns the smallest value
// covered by the output. Within one output interval the smallest value is its
// start, so no interval is ever enumerated.
func MinOverRanges(r Runner, ranges []interval.Interval) (uint64, error) {
	lowest, ok := r.RunRanges(interval.Set(ranges)).Min()
	if !ok {
		return 0, &EmptyInputError{Query: "min over ranges"}
	}

	return lowest, nil
}
