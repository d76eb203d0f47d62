package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkarlsen/BloxClicker_Go/internal/worker"
)

type tickJob struct {
	runs int32
	ran  chan struct{}
}

func (j *tickJob) Process(ctx context.Context) error {
	atomic.AddInt32(&j.runs, 1)
	select {
	case j.ran <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler_RunsJobAtInterval(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &tickJob{ran: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	for seen := 0; seen < 2; {
		select {
		case <-job.ran:
			seen++
		case <-timeout:
			t.Fatal("timed out waiting for scheduled runs")
		}
	}
}

func TestScheduler_ScheduleWhenGatesOnCondition(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	var active atomic.Bool
	job := &tickJob{ran: make(chan struct{}, 10)}
	sched.ScheduleWhen(5*time.Millisecond, active.Load, job)

	// Condition false: ticks pass with nothing reaching the pool.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&job.runs))

	// Condition true: scheduling resumes.
	active.Store(true)
	select {
	case <-job.ran:
	case <-time.After(time.Second):
		t.Fatal("job never ran after condition became true")
	}

	// Condition false again: no further runs.
	active.Store(false)
	time.Sleep(20 * time.Millisecond)
	after := atomic.LoadInt32(&job.runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&job.runs))
}

func TestScheduler_StopHaltsScheduling(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)

	job := &tickJob{ran: make(chan struct{}, 10)}
	sched.Schedule(5*time.Millisecond, job)

	select {
	case <-job.ran:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	sched.Stop()

	// Let any job enqueued before Stop drain through the pool.
	time.Sleep(20 * time.Millisecond)
	after := atomic.LoadInt32(&job.runs)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&job.runs))
}
