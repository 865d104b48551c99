package coordinator

import (
	"context"
	"fmt"
	"sync"

	"pricecheck/internal/fetcher"
)

// Options controls how a run behaves.
type Options struct {
	// MaxConcurrent bounds the number of in-flight fetches. 1 gives the
	// plain sequential run.
	MaxConcurrent int

	// FailFast aborts the run on the first per-holding failure instead of
	// skipping the holding and continuing.
	FailFast bool
}

// Coordinator manages the fetchers for one run and aggregates their results.
type Coordinator struct {
	fetchers []fetcher.Fetcher
	opts     Options
}

// New creates a new Coordinator with the given fetchers
func New(fetchers []fetcher.Fetcher, opts Options) *Coordinator {
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 1
	}
	return &Coordinator{
		fetchers: fetchers,
		opts:     opts,
	}
}

// Run executes all fetchers, at most MaxConcurrent at a time, and returns
// one Result per fetcher in input order regardless of completion order.
//
// Under the default skip policy a failed fetch only sets Result.Err and the
// run still succeeds. With FailFast the first failure cancels the remaining
// fetches and is returned as the run error.
func (c *Coordinator) Run(ctx context.Context) ([]fetcher.Result, error) {
	if len(c.fetchers) == 0 {
		return nil, fmt.Errorf("no fetchers configured")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultChan := make(chan fetcher.Result, len(c.fetchers))
	sem := make(chan struct{}, c.opts.MaxConcurrent)

	var wg sync.WaitGroup
	for i, f := range c.fetchers {
		wg.Add(1)
		go func(index int, ft fetcher.Fetcher) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			price, err := ft.Fetch(ctx)
			resultChan <- fetcher.Result{
				Index:  index,
				Symbol: ft.Symbol(),
				Price:  price,
				Err:    err,
			}
		}(i, f)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Results arrive in completion order; slot them back into input order.
	results := make([]fetcher.Result, len(c.fetchers))
	var firstErr error
	for result := range resultChan {
		results[result.Index] = result
		if result.Err != nil && c.opts.FailFast && firstErr == nil {
			firstErr = result.Err
			cancel()
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
