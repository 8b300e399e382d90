package concurrent

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrorMode defines how a fan-out reacts to a failing element.
type ErrorMode int

const (
	// StopAllOnError cancels the shared context on the first error and returns it.
	StopAllOnError ErrorMode = iota
	// CollectErrors lets every element finish and joins all errors.
	CollectErrors
)

// Map applies fn to every item with at most limit goroutines in flight, preserving
// input order in the result slice. limit <= 0 means unbounded.
//
// With StopAllOnError the first error cancels ctx for the remaining elements and is
// returned as is. With CollectErrors, failed positions hold the zero value of R and the
// returned error joins every failure.
func Map[T any, R any](ctx context.Context, items []T, limit int, mode ErrorMode, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	switch mode {
	case CollectErrors:
		errs := make([]error, len(items))
		g := errgroup.Group{}
		if limit > 0 {
			g.SetLimit(limit)
		}
		for i, item := range items {
			g.Go(func() error {
				out[i], errs[i] = fn(ctx, item)
				return nil
			})
		}
		_ = g.Wait()
		return out, errors.Join(errs...)
	default:
		g, gctx := errgroup.WithContext(ctx)
		if limit > 0 {
			g.SetLimit(limit)
		}
		for i, item := range items {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := fn(gctx, item)
				if err != nil {
					return err
				}
				out[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return out, err
		}
		return out, nil
	}
}
