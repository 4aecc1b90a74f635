package pool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is submitted to a closed pool.
var ErrClosed = errors.New("worker pool is closed")

// WorkerPool manages a fixed pool of goroutines for parallel tasks.
// The trainer submits one task per corpus segment each phase; a fixed pool
// eliminates the overhead of spawning thousands of goroutines per
// generation.
type WorkerPool struct {
	numWorkers int
	workCh     chan func() // Channel carries work closures
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex
}

// New creates a worker pool with numWorkers goroutines.
// If numWorkers <= 0, runtime.GOMAXPROCS(0) is used.
func New(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	wp := &WorkerPool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2), // 2x buffer for pipelining
		stopCh:     make(chan struct{}),
	}

	wp.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go wp.worker()
	}

	return wp
}

// NumWorkers returns the number of worker goroutines.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// worker processes work closures from the work channel.
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.stopCh:
			// Drain remaining work before exiting
			for {
				select {
				case workFunc, ok := <-wp.workCh:
					if !ok {
						return
					}
					workFunc()
				default:
					return
				}
			}
		case workFunc, ok := <-wp.workCh:
			if !ok {
				return
			}
			workFunc()
		}
	}
}

// Submit submits a task to the worker pool.
//
// The function returns immediately after enqueueing the work. Callers that
// need a barrier (the trainer's phase transitions) track completion with
// their own WaitGroup inside the task closure.
//
// Error conditions:
//   - Returns ErrClosed if the pool is closed
//   - Returns the context error if ctx is cancelled before enqueueing
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.submitMu.RLock()
	defer wp.submitMu.RUnlock()

	if wp.closed.Load() {
		return ErrClosed
	}

	// Enqueue work (with backpressure)
	select {
	case wp.workCh <- task:
		return nil
	case <-wp.stopCh:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts down the worker pool gracefully.
func (wp *WorkerPool) Close() {
	if !wp.closed.CompareAndSwap(false, true) {
		return
	}

	wp.submitMu.Lock()
	close(wp.stopCh)
	close(wp.workCh)
	wp.submitMu.Unlock()

	wp.wg.Wait()
}
