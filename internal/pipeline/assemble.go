package pipeline

import (
	"fmt"
	"slices"

	"range-remapper/internal/category"
	"range-remapper/internal/rangemap"
)

// Triple is one rule in almanac form: Length values starting at Source map
// onto Length values starting at Dest.
type Triple struct {
	Dest   uint64
	Source uint64
	Length uint64
}

// StageDef describes one stage by category names. Stage definitions may be
// given in any order.
type StageDef struct {
	From  string
	To    string
	Rules []Triple
}

// Assemble interns category names, builds one table per definition, orders
// the tables along the category chain and validates the result with New.
// A WithNames option is added automatically.
func Assemble(defs []StageDef, entry, terminal string, opts ...Option) (*Pipeline, error) {
	names := category.NewRegistry()

	tables := make([]*rangemap.Table, len(defs))
	for i, def := range defs {
		tbl, err := buildTable(names, def)
		if err != nil {
			return nil, fmt.Errorf("stage %s-to-%s: %w", def.From, def.To, err)
		}

		tables[i] = tbl
	}

	entryID, ok := names.Lookup(entry)
	if !ok {
		return nil, unknownCategory(names, entry)
	}

	terminalID, ok := names.Lookup(terminal)
	if !ok {
		return nil, unknownCategory(names, terminal)
	}

	ordered, stuck, ok := orderTables(tables)
	if !ok {
		return nil, &CycleError{Category: stuck, names: names}
	}

	return New(entryID, terminalID, ordered, append(slices.Clip(opts), WithNames(names))...)
}

func buildTable(names *category.Registry, def StageDef) (*rangemap.Table, error) {
	from := names.Intern(def.From)
	to := names.Intern(def.To)

	rules := make([]rangemap.Rule, 0, len(def.Rules))
	for i, tr := range def.Rules {
		r, err := rangemap.RuleFromTriple(tr.Dest, tr.Source, tr.Length)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		rules = append(rules, r)
	}

	return rangemap.NewTable(from, to, rules)
}

// Names returns the registry used to render category names. It is nil for
// pipelines built with New without WithNames.
func (p *Pipeline) Names() *category.Registry {
	return p.names
}
