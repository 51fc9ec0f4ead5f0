package fanout

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

// Task produces the value for one fan-out unit.
type Task[T any] func(ctx context.Context, index int) (T, error)

// Consumer receives unit results strictly in index order. Returning false
// stops the walk: no further windows are scheduled.
type Consumer[T any] func(index int, value T, err error) bool

// Ordered runs n tasks in windows of at most width concurrent units and hands
// every result to consume in index order before the next window starts.
// With width 1 the walk is fully sequential, call for call.
// A panicking task is reported to consume as an error for that unit.
func Ordered[T any](ctx context.Context, n, width int, task Task[T], consume Consumer[T]) error {
	if n <= 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if width > n {
		width = n
	}

	pool, err := ants.NewPool(width)
	if err != nil {
		return fmt.Errorf("create fan-out pool: %w", err)
	}
	defer pool.Release()

	values := make([]T, width)
	errs := make([]error, width)

	for start := 0; start < n; start += width {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+width, n)
		var wg sync.WaitGroup
		for idx := start; idx < end; idx++ {
			slot := idx - start
			var zero T
			values[slot], errs[slot] = zero, nil

			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()
				recovered := panics.Try(func() {
					values[slot], errs[slot] = task(ctx, idx)
				})
				if recovered != nil {
					errs[slot] = recovered.AsError()
				}
			})
			if submitErr != nil {
				wg.Done()
				errs[slot] = fmt.Errorf("submit fan-out task: %w", submitErr)
			}
		}
		wg.Wait()

		for idx := start; idx < end; idx++ {
			slot := idx - start
			if !consume(idx, values[slot], errs[slot]) {
				return nil
			}
		}
	}

	return nil
}
