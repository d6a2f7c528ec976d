package pipeline

import (
	"slices"

	"range-remapper/internal/category"
	"range-remapper/internal/rangemap"
)

// Pipeline is a validated chain of tables leading from an entry category to
// a terminal category. It is immutable and safe for concurrent use.
type Pipeline struct {
	entry    category.ID
	terminal category.ID
	stages   []*rangemap.Table
	coalesce bool
	names    *category.Registry
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCoalesce merges touching or overlapping intervals between stages when
// running interval sets. It never changes which points are covered.
func WithCoalesce(enabled bool) Option {
	return func(p *Pipeline) {
		p.coalesce = enabled
	}
}

// WithNames attaches a registry used to render category names in errors and
// traces.
func WithNames(names *category.Registry) Option {
	return func(p *Pipeline) {
		p.names = names
	}
}

// New validates that stages form a single path from entry to terminal and
// returns the pipeline.
func New(entry, terminal category.ID, stages []*rangemap.Table, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		entry:    entry,
		terminal: terminal,
		stages:   slices.Clone(stages),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pipeline) validate() error {
	if len(p.stages) == 0 {
		return ErrNoStages
	}

	visited := map[category.ID]struct{}{p.entry: {}}
	current := p.entry

	for i, st := range p.stages {
		if st.From() != current {
			return &DisconnectedChainError{Index: i, Want: current, Got: st.From(), names: p.names}
		}

		if _, seen := visited[st.To()]; seen {
			return &CycleError{Category: st.To(), names: p.names}
		}

		visited[st.To()] = struct{}{}
		current = st.To()
	}

	if current != p.terminal {
		return &DisconnectedChainError{Index: -1, Want: p.terminal, Got: current, names: p.names}
	}

	return nil
}

// Entry returns the category of pipeline inputs.
func (p *Pipeline) Entry() category.ID { return p.entry }

// Terminal returns the category of pipeline outputs.
func (p *Pipeline) Terminal() category.ID { return p.terminal }

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns the tables in execution order.
func (p *Pipeline) Stages() []*rangemap.Table {
	return slices.Clone(p.stages)
}

// Categories returns every category on the path, entry first.
func (p *Pipeline) Categories() []category.ID {
	ids := make([]category.ID, 0, len(p.stages)+1)
	ids = append(ids, p.entry)

	for _, st := range p.stages {
		ids = append(ids, st.To())
	}

	return ids
}

// Name renders a category using the attached registry, if any.
func (p *Pipeline) Name(id category.ID) string {
	return p.names.Name(id)
}
