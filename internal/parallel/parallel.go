// Package parallel provides the fixed-size worker pool used for batch inference.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// ErrInvalidWorkers is returned when a pool is configured with fewer than one worker.
var ErrInvalidWorkers = errors.New("worker count must be at least 1")

// Config controls parallel execution behavior.
type Config struct {
	NumWorkers int // Number of worker goroutines to use.
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{NumWorkers: runtime.NumCPU()}
}

// Run executes f(i) for i in [0, n) on cfg.NumWorkers goroutines.
//
// Indices are fed through a bounded queue. Once any call fails no further
// indices are dispatched; calls already running are allowed to finish and
// the first error is returned. f must be safe for concurrent use.
func Run(n int, cfg Config, f func(i int) error) error {
	if cfg.NumWorkers < 1 {
		return ErrInvalidWorkers
	}
	if n <= 0 {
		return nil
	}

	workers := min(cfg.NumWorkers, n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		failed   = make(chan struct{})
		tasks    = make(chan int, workers)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				if err := f(i); err != nil {
					once.Do(func() {
						firstErr = err
						close(failed)
					})
				}
			}
		}()
	}

dispatch:
	for i := 0; i < n; i++ {
		select {
		case <-failed:
			break dispatch
		default:
		}
		select {
		case <-failed:
			break dispatch
		case tasks <- i:
		}
	}
	close(tasks)
	wg.Wait()

	return firstErr
}
