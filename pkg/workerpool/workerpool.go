// Package workerpool provides bounded concurrent processing helpers.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process for every item on at most workerCount goroutines.
// The first error cancels the shared context, invokes onCancel and is returned once every worker exits.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	workerCount = max(1, min(workerCount, len(items)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	tasks := make(chan T)
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map applies fn to every item concurrently and returns the results in input order.
// fn receives the item position so callers can correlate results without extra bookkeeping.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, int, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	positions := make([]int, len(items))
	for i := range positions {
		positions[i] = i
	}

	err := Process(ctx, workerCount, positions, func(ctx context.Context, i int) error {
		r, err := fn(ctx, i, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}
