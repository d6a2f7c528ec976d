package rangemap

import (
	"slices"
	"sort"

	"range-remapper/internal/category"
)

// Table is one stage of a pipeline: disjoint rules sorted by source start,
// converting values of category From into category To. A Table is immutable
// and safe for concurrent use.
type Table struct {
	from  category.ID
	to    category.ID
	rules []Rule
}

// NewTable validates rules and returns the table. Rules with an empty source
// cover nothing and are dropped. The input slice is not modified.
func NewTable(from, to category.ID, rules []Rule) (*Table, error) {
	sorted := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !r.Source.IsEmpty() {
			sorted = append(sorted, r)
		}
	}

	slices.SortStableFunc(sorted, func(a, b Rule) int {
		switch {
		case a.Source.Start < b.Source.Start:
			return -1
		case a.Source.Start > b.Source.Start:
			return 1
		default:
			return 0
		}
	})

	// After sorting, any overlap shows up between neighbours.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Source.Start < sorted[i-1].Source.End {
			return nil, &OverlappingRuleError{From: from, To: to, First: sorted[i-1], Next: sorted[i]}
		}
	}

	return &Table{from: from, to: to, rules: sorted}, nil
}

// From returns the category the table reads.
func (t *Table) From() category.ID { return t.from }

// To returns the category the table produces.
func (t *Table) To() category.ID { return t.to }

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// Rules returns a copy of the rules in source order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// search returns the index of the first rule whose source ends after v.
// That rule contains v if and only if its start is <= v.
func (t *Table) search(v uint64) int {
	return sort.Search(len(t.rules), func(i int) bool {
		return t.rules[i].Source.End > v
	})
}

// Lookup returns the rule whose source contains v.
func (t *Table) Lookup(v uint64) (Rule, bool) {
	i := t.search(v)
	if i < len(t.rules) && t.rules[i].Source.Start <= v {
		return t.rules[i], true
	}

	return Rule{}, false
}

// MapPoint converts v through the table. Values not covered by any rule are
// returned unchanged.
func (t *Table) MapPoint(v uint64) uint64 {
	if r, ok := t.Lookup(v); ok {
		return r.Apply(v)
	}

	return v
}
