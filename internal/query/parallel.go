package query

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"range-remapper/internal/common"
	"range-remapper/internal/interval"
)

// tasksPerWorker splits the input finer than the worker count so that an
// expensive chunk does not leave the other workers idle.
const tasksPerWorker = 4

// Parallel evaluates the aggregate queries over the outer input list with a
// bounded number of goroutines. Each interval is still swept sequentially.
// Results are identical to MinOverPoints and MinOverRanges.
type Parallel struct {
	// Workers caps concurrent goroutines. Zero or less uses GOMAXPROCS.
	Workers int
}

func (p Parallel) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (p Parallel) chunkSize(n int) int {
	tasks := p.workers() * tasksPerWorker

	return max(1, (n+tasks-1)/tasks)
}

type partial struct {
	value uint64
	ok    bool
}

func reduce(parts []partial) (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)

	for _, pt := range parts {
		if pt.ok && (!found || pt.value < lowest) {
			lowest = pt.value
			found = true
		}
	}

	return lowest, found
}

// MinOverPoints is the concurrent form of the package-level MinOverPoints.
func (p Parallel) MinOverPoints(ctx context.Context, r Runner, values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, &EmptyInputError{Query: "min over points"}
	}

	chunks := common.Chunk(values, p.chunkSize(len(values)))
	parts := make([]partial, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := MinOverPoints(r, chunk)
			if err != nil {
				return err
			}

			parts[i] = partial{value: v, ok: true}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	lowest, _ := reduce(parts)

	return lowest, nil
}

// MinOverRanges is the concurrent form of the package-level MinOverRanges.
func (p Parallel) MinOverRanges(ctx context.Context, r Runner, ranges []interval.Interval) (uint64, error) {
	chunks := common.Chunk(ranges, p.chunkSize(len(ranges)))
	parts := make([]partial, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, ok := r.RunRanges(interval.Set(chunk)).Min()
			parts[i] = partial{value: v, ok: ok}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	lowest, ok := reduce(parts)
	if !ok {
		return 0, &EmptyInputError{Query: "min over ranges"}
	}

	return lowest, nil
}
