// Package pool provides bounded worker-pool parallelism for the one hot
// path in this module with intrinsic parallelism: ExpProof's independent
// per-trial computation (spec.md §5). Trials themselves may run out of
// order and concurrently; the Fiat-Shamir transcript they feed must still
// be built serially in a fixed canonical order, so callers collect each
// trial's result and absorb it into the transcript themselves, in index
// order, after Run returns.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many trial goroutines may run at once.
type Pool struct {
	limit int
}

// New returns a Pool capped at limit concurrent goroutines. limit <= 0
// defaults to runtime.NumCPU().
func New(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return &Pool{limit: limit}
}

// Run evaluates fn(i) for every i in [0, n) with bounded concurrency,
// collecting each result by index. It returns the first error encountered
// and cancels remaining work; the result slice is only valid on success.
func Run[T any](ctx context.Context, p *Pool, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			r, err := fn(gctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
