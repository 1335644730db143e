// Package fanout runs one function over many items on a bounded number of
// goroutines. The webhook notifier uses it to deliver a single event to every
// subscribed endpoint at once.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. Items still waiting for a slot when ctx
// ends get ctx.Err() without fn being called. A panic in fn becomes that
// item's error. Run returns once every call has finished.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	maxWorkers = max(maxWorkers, 1)

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}
			results[i] = call(ctx, fn, item)
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, fn func(context.Context, T) (R, error), item T) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", v)}
		}
	}()
	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}

// Errors joins the failures of results, or returns nil when all succeeded.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
