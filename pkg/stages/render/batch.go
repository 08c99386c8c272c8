package render

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/user/mockshot/pkg/pipeline"
)

// indexedResult holds a result with its input index for ordering.
type indexedResult struct {
	index  int
	result pipeline.RenderResult
}

// ExecuteBatch renders inputs with up to numWorkers goroutines and returns
// results in input order. On error every surface already rendered is
// released and the first error is returned.
func (s *Stage) ExecuteBatch(ctx context.Context, inputs []pipeline.RenderInput, numWorkers int) ([]pipeline.RenderResult, error) {
	if len(inputs) == 0 {
		return []pipeline.RenderResult{}, nil
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(inputs) {
		numWorkers = len(inputs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, len(inputs))
	results := make(chan indexedResult, len(inputs))
	errChan := make(chan error, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, inputs, jobs, results, errChan, cancel)
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	ordered := make([]pipeline.RenderResult, len(inputs))
	for r := range results {
		ordered[r.index] = r.result
	}

	err := <-errChan
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for _, r := range ordered {
			if r.Surface != nil {
				s.pool.Release(r.Surface)
			}
		}
		return nil, err
	}
	return ordered, nil
}

func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	inputs []pipeline.RenderInput,
	jobs <-chan int,
	results chan<- indexedResult,
	errChan chan<- error,
	cancel context.CancelFunc,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := s.Execute(ctx, inputs[idx])
		if err != nil {
			select {
			case errChan <- fmt.Errorf("render image %d: %w", idx, err):
			default:
			}
			cancel()
			return
		}

		results <- indexedResult{index: idx, result: res}
	}
}
