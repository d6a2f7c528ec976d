// Package app wires definition loading, pipeline building and the aggregate
// queries together for the command line tool.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"range-remapper/internal/config"
	"range-remapper/internal/definition"
	"range-remapper/internal/logging"
	"range-remapper/internal/pipeline"
	"range-remapper/internal/query"
)

// ErrInvalidDefinition is returned when validation reports errors.
var ErrInvalidDefinition = errors.New("invalid definition")

// Solver answers questions about one definition file.
type Solver struct {
	cfg config.Config
	log *logging.ComponentLogger
}

// NewSolver creates a solver. A nil logger discards output.
func NewSolver(cfg config.Config, log *logging.ComponentLogger) *Solver {
	if log == nil {
		log = logging.Nop()
	}

	return &Solver{cfg: cfg, log: log}
}

// Loaded is a validated document together with its pipeline.
type Loaded struct {
	Document *definition.Document
	Pipeline *pipeline.Pipeline
}

// Load reads, validates and builds the definition at path.
func (s *Solver) Load(path string) (*Loaded, error) {
	doc, err := definition.Load(path, s.cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("load definition: %w", err)
	}

	diags := definition.Validate(doc)
	s.log.LogDiagnostics(diags)

	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, path, diags.Error())
	}

	p, err := doc.Build(pipeline.WithCoalesce(s.cfg.Coalesce))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.log.Debug().
		Str("file", path).
		Str("entry", doc.Entry).
		Str("terminal", doc.Terminal).
		Int("stages", p.Len()).
		Msg("pipeline built")

	return &Loaded{Document: doc, Pipeline: p}, nil
}

// Result holds the minima found for a document's seeds. A minimum is only
// meaningful when the matching Has flag is set.
type Result struct {
	PointMin  uint64
	HasPoints bool
	RangeMin  uint64
	HasRanges bool
}

// Solve computes the lowest terminal value reachable from the document's
// seed points and from its seed ranges.
func (s *Solver) Solve(ctx context.Context, path string) (Result, error) {
	l, err := s.Load(path)
	if err != nil {
		return Result{}, err
	}

	return s.SolveLoaded(ctx, l)
}

// SolveLoaded is Solve for an already loaded document.
func (s *Solver) SolveLoaded(ctx context.Context, l *Loaded) (Result, error) {
	var (
		res Result
		q   = query.Parallel{Workers: s.cfg.Workers}
	)

	if points := l.Document.Seeds.Points; len(points) > 0 {
		start := time.Now()

		v, err := q.MinOverPoints(ctx, l.Pipeline, points)
		if err != nil {
			return Result{}, fmt.Errorf("points: %w", err)
		}

		res.PointMin, res.HasPoints = v, true

		s.log.Info().
			Int("seeds", len(points)).
			Uint64("min", v).
			Dur("took", time.Since(start)).
			Msg("point query done")
	}

	ranges, err := l.Document.SeedIntervals()
	if err != nil {
		return Result{}, err
	}

	if len(ranges) > 0 {
		start := time.Now()

		v, err := q.MinOverRanges(ctx, l.Pipeline, ranges)
		switch {
		case errors.Is(err, query.ErrEmptyInput):
			s.log.Warn().Msg("every seed range is empty")
		case err != nil:
			return Result{}, fmt.Errorf("ranges: %w", err)
		default:
			res.RangeMin, res.HasRanges = v, true

			s.log.Info().
				Int("ranges", len(ranges)).
				Uint64("min", v).
				Dur("took", time.Since(start)).
				Msg("range query done")
		}
	}

	return res, nil
}

// Step is the value of a traced point in one category.
type Step struct {
	Category string
	Value    uint64
}

// Trace follows each value through the pipeline, entry category first.
func (s *Solver) Trace(path string, values []uint64) ([][]Step, error) {
	l, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	cats := l.Pipeline.Categories()
	out := make([][]Step, len(values))

	for i, v := range values {
		trace := l.Pipeline.TracePoint(v)
		steps := make([]Step, len(trace))

		for j, tv := range trace {
			steps[j] = Step{Category: l.Pipeline.Name(cats[j]), Value: tv}
		}

		out[i] = steps
	}

	return out, nil
}

// Convert loads the definition at in and writes it as YAML to out. The
// document must be valid; chain assembly is not required.
func (s *Solver) Convert(in, out string) error {
	doc, err := definition.Load(in, s.cfg.Format)
	if err != nil {
		return fmt.Errorf("load definition: %w", err)
	}

	diags := definition.Validate(doc)
	s.log.LogDiagnostics(diags)

	if diags.HasErrors() {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, in, diags.Error())
	}

	if err := definition.WriteFile(doc, out); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	s.log.Info().Str("from", in).Str("to", out).Int("stages", len(doc.Stages)).Msg("definition converted")

	return nil
}
