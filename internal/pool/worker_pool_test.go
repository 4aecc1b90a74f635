package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	wp := New(4)
	defer wp.Close()

	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		counter atomic.Int64
	)

	const tasks = 1000
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		err := wp.Submit(ctx, func() {
			defer wg.Done()
			counter.Add(1)
		})
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, int64(tasks), counter.Load())
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	wp := New(2)
	wp.Close()

	err := wp.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	wp := New(2)
	wp.Close()
	wp.Close()
}

func TestWorkerPool_DefaultsWorkerCount(t *testing.T) {
	wp := New(0)
	defer wp.Close()

	assert.Greater(t, wp.NumWorkers(), 0)
}
