package scheduler

import (
	"sync"
	"time"

	"github.com/mkarlsen/BloxClicker_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.ScheduleWhen(interval, nil, job)
}

// ScheduleWhen registers a job to run at a fixed interval while cond holds.
// A false cond skips the tick entirely, so no work reaches the pool until the
// trigger condition becomes true again. A nil cond always enqueues.
func (s *Scheduler) ScheduleWhen(interval time.Duration, cond func() bool, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if cond != nil && !cond() {
					continue
				}
				// Enqueue blocks if the queue is full, which stalls this
				// goroutine until a worker drains it. Fine for our intervals.
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Start starts the scheduler. Schedule starts its goroutine immediately, so
// this is a no-op kept for lifecycle symmetry with the worker pool.
func (s *Scheduler) Start() {
	// No-op
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
