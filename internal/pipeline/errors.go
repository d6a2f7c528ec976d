package pipeline

import (
	"errors"
	"fmt"

	"range-remapper/internal/category"
	"range-remapper/internal/match"
)

// ErrNoStages is returned when a pipeline is built without stages.
var ErrNoStages = errors.New("pipeline has no stages")

// DisconnectedChainError reports a break in the category chain. Index is the
// position of the stage whose source does not match Want; -1 means the last
// stage does not end at the terminal category.
type DisconnectedChainError struct {
	Index int
	Want  category.ID
	Got   category.ID
	names *category.Registry
}

func (e *DisconnectedChainError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("chain ends at %q, want terminal %q", e.names.Name(e.Got), e.names.Name(e.Want))
	}

	return fmt.Sprintf("stage %d starts at %q, want %q", e.Index, e.names.Name(e.Got), e.names.Name(e.Want))
}

// CycleError reports a category reached twice along the chain.
type CycleError struct {
	Category category.ID
	names    *category.Registry
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("category %q is visited more than once", e.names.Name(e.Category))
}

// UnknownCategoryError reports an entry or terminal name that no stage uses.
// Suggestion is a known name close to Name, or empty.
type UnknownCategoryError struct {
	Name       string
	Suggestion string
}

func (e *UnknownCategoryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown category %q (did you mean %q?)", e.Name, e.Suggestion)
	}

	return fmt.Sprintf("unknown category %q", e.Name)
}

func unknownCategory(names *category.Registry, name string) *UnknownCategoryError {
	suggestion, _ := match.Suggest(name, names.Names())
	return &UnknownCategoryError{Name: name, Suggestion: suggestion}
}
