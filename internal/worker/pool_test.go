package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	executed *int32
	err      error
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func waitForCount(t *testing.T, counter *int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if atomic.LoadInt32(counter) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d jobs executed, got %d", want, atomic.LoadInt32(counter))
}

func TestPool_ProcessesEnqueuedJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &countingJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)
	pool.Enqueue(job)

	waitForCount(t, &executed, 3)
	pool.Stop()
}

func TestPool_SingleWorkerRunsJobsSequentially(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Enqueue(&countingJob{executed: &executed})
	}

	waitForCount(t, &executed, 5)
	pool.Stop()
	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
}

func TestPool_JobErrorDoesNotKillWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()

	pool.Enqueue(&countingJob{executed: &executed, err: errors.New("tick failed")})
	pool.Enqueue(&countingJob{executed: &executed})

	waitForCount(t, &executed, 2)
	pool.Stop()
}
