// Package run fans work out over many repositories with a bounded number
// of workers and aggregates the results.
package run

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/grit/internal/repo"
)

// Result pairs a repository path with the value an operation produced for
// it. Results arrive in completion order, not submission order.
type Result[T any] struct {
	Path  string
	Value T
}

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Parallel runs op once per repository using at most workers goroutines and
// returns exactly one result per repository. Operations are infallible at
// this level: op folds its own failures into T.
func Parallel[T any](ctx context.Context, repos []repo.Repo, workers int, op func(ctx context.Context, r repo.Repo) T) []Result[T] {
	if workers < 1 {
		workers = 1
	}

	results := make(chan Result[T])
	go func() {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, r := range repos {
			g.Go(func() error {
				results <- Result[T]{Path: r.Path(), Value: op(ctx, r)}
				return nil
			})
		}
		g.Wait()
		close(results)
	}()

	out := make([]Result[T], 0, len(repos))
	for res := range results {
		out = append(out, res)
	}
	return out
}
