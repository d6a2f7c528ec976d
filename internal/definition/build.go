package definition

import (
	"fmt"

	"range-remapper/internal/interval"
	"range-remapper/internal/pipeline"
)

// StageDefs converts the stages into pipeline definitions.
func (d *Document) StageDefs() []pipeline.StageDef {
	defs := make([]pipeline.StageDef, len(d.Stages))
	for i, st := range d.Stages {
		rules := make([]pipeline.Triple, len(st.Ranges))
		for j, tr := range st.Ranges {
			rules[j] = pipeline.Triple{Dest: tr.Dest, Source: tr.Source, Length: tr.Length}
		}

		defs[i] = pipeline.StageDef{From: st.From, To: st.To, Rules: rules}
	}

	return defs
}

// Build assembles the document's stages into a pipeline from Entry to
// Terminal.
func (d *Document) Build(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	p, err := pipeline.Assemble(d.StageDefs(), d.Entry, d.Terminal, opts...)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return p, nil
}

// SeedIntervals converts the seed ranges into intervals.
func (d *Document) SeedIntervals() ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(d.Seeds.Ranges))
	for i, sr := range d.Seeds.Ranges {
		iv, err := interval.FromStartLength(sr.Start, sr.Length)
		if err != nil {
			return nil, fmt.Errorf("seed range %d: %w", i, err)
		}

		out = append(out, iv)
	}

	return out, nil
}
