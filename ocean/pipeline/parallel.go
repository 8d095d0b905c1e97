package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ColumnError reports the failure of a single column by index.
type ColumnError struct {
	Index int
	Err   error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("pipeline: column %d: %v", e.Index, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// SolveAll runs the pipeline over many columns in parallel.
//
// Columns are independent: a failure leaves a nil entry in the result
// slice and contributes a ColumnError to the joined error, while the
// other columns still complete. The result slice is index-aligned with
// cols, so callers decide whether to skip failed columns or treat any
// error as fatal.
//
// workers bounds the parallelism; values below 1 use GOMAXPROCS.
// Cancelling ctx stops columns that have not started yet, recording
// the context error for them.
func (p *Pipeline) SolveAll(ctx context.Context, cols []Column, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(cols) {
		workers = len(cols)
	}

	results := make([]*Result, len(cols))
	errs := make([]error, len(cols))

	indices := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for i := range indices {
				res, err := p.Solve(cols[i])
				if err != nil {
					errs[i] = &ColumnError{Index: i, Err: err}
					continue
				}
				results[i] = res
			}
		}()
	}

	for i := range cols {
		if err := ctx.Err(); err != nil {
			errs[i] = &ColumnError{Index: i, Err: err}
			continue
		}

		select {
		case <-ctx.Done():
			errs[i] = &ColumnError{Index: i, Err: ctx.Err()}
		case indices <- i:
		}
	}
	close(indices)

	wg.Wait()

	return results, errors.Join(errs...)
}
