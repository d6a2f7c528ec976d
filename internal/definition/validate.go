package definition

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"range-remapper/internal/diagnostic"
	"range-remapper/internal/interval"
	"range-remapper/internal/match"
	"range-remapper/internal/rangemap"
)

// Validate checks a document without building a pipeline. It reports every
// problem it finds; chain-level checks (connectivity, cycles) are left to
// Build, which needs the whole stage set to judge them.
func Validate(doc *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddError("document_is_nil", "document is nil", "", "")
		return res
	}

	if len(doc.Stages) == 0 {
		res.AddError("no_stages", "document has no stages", "", "")
	}

	known := map[string]struct{}{}
	sources := map[string]int{}

	for i := range doc.Stages {
		st := &doc.Stages[i]
		name := st.Name()

		if st.From == "" || st.To == "" {
			res.AddError("empty_category", "stage has an empty category name", name, fmt.Sprintf("stages[%d]", i))
			continue
		}

		known[st.From] = struct{}{}
		known[st.To] = struct{}{}

		if st.From == st.To {
			res.AddError("self_mapping", fmt.Sprintf("stage maps %q onto itself", st.From), name, fmt.Sprintf("stages[%d]", i))
		}

		if prev, ok := sources[st.From]; ok {
			res.AddError("duplicate_stage_source",
				fmt.Sprintf("category %q is already converted by stages[%d]", st.From, prev), name, fmt.Sprintf("stages[%d]", i))
		} else {
			sources[st.From] = i
		}

		validateRanges(res, name, st.Ranges)
	}

	if len(doc.Stages) > 0 {
		names := slices.Sorted(maps.Keys(known))

		if _, ok := known[doc.Entry]; !ok {
			res.AddError("unknown_entry", unknownMessage("entry", doc.Entry, names), "", "entry")
		}

		if _, ok := known[doc.Terminal]; !ok {
			res.AddError("unknown_terminal", unknownMessage("terminal", doc.Terminal, names), "", "terminal")
		}
	}

	validateSeeds(res, doc.Seeds)

	return res
}

func unknownMessage(role, name string, known []string) string {
	msg := fmt.Sprintf("%s category %q is not used by any stage", role, name)
	if suggestion, ok := match.Suggest(name, known); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}

	return msg
}

func validateRanges(res *diagnostic.Diagnostics, stage string, ranges []Triple) {
	rules := make([]rangemap.Rule, 0, len(ranges))

	for i, tr := range ranges {
		loc := fmt.Sprintf("ranges[%d]", i)

		if tr.Length == 0 {
			res.AddWarning("empty_range", "range has zero length and maps nothing", stage, loc)
			continue
		}

		r, err := rangemap.RuleFromTriple(tr.Dest, tr.Source, tr.Length)
		if err != nil {
			res.AddError("invalid_range", err.Error(), stage, loc)
			continue
		}

		rules = append(rules, r)
	}

	if _, err := rangemap.NewTable(0, 0, rules); err != nil {
		var overlap *rangemap.OverlappingRuleError
		if errors.As(err, &overlap) {
			res.AddError("overlapping_ranges",
				fmt.Sprintf("source %s overlaps source %s", overlap.First.Source, overlap.Next.Source), stage, "ranges")
		} else {
			res.AddError("invalid_ranges", err.Error(), stage, "ranges")
		}
	}
}

func validateSeeds(res *diagnostic.Diagnostics, seeds Seeds) {
	if seeds.IsZero() {
		res.AddInfo("no_seeds", "document has no seeds", "", "seeds")
		return
	}

	switch {
	case len(seeds.Points)%2 == 1 && len(seeds.Ranges) > 0 && slices.Equal(seeds.Ranges, pairSeeds(seeds.Points)):
		res.AddWarning("odd_seed_count",
			fmt.Sprintf("%d seeds cannot all be paired; %d is not part of any seed range", len(seeds.Points), seeds.Points[len(seeds.Points)-1]),
			"", "seeds")
	case len(seeds.Ranges) == 0:
		res.AddInfo("no_seed_ranges", "document has no seed ranges", "", "seeds.ranges")
	}

	for i, sr := range seeds.Ranges {
		if _, err := interval.FromStartLength(sr.Start, sr.Length); err != nil {
			res.AddError("seed_range_overflow", err.Error(), "", fmt.Sprintf("seeds.ranges[%d]", i))
		}
	}
}
