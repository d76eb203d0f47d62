package worker

import (
	"context"

	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
)

// AutoTicker applies one second of automatic production.
type AutoTicker interface {
	Tick(ctx context.Context) error
}

// EventSweeper removes expired game events from active state.
type EventSweeper interface {
	SweepExpiredEvents(ctx context.Context) (int, error)
}

// AutoTickJob credits auto click income once per scheduled interval.
type AutoTickJob struct {
	ticker AutoTicker
}

// NewAutoTickJob creates an auto tick job
func NewAutoTickJob(ticker AutoTicker) *AutoTickJob {
	return &AutoTickJob{ticker: ticker}
}

// Process runs one auto tick. The scheduler only enqueues this while auto
// power is positive; the zero-power no-op inside the service is the backstop.
func (j *AutoTickJob) Process(ctx context.Context) error {
	if err := j.ticker.Tick(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgAutoTickFailed, "error", err)
		return err
	}
	return nil
}

// EventSweepJob retires game events whose end time has passed.
type EventSweepJob struct {
	sweeper EventSweeper
}

// NewEventSweepJob creates an event sweep job
func NewEventSweepJob(sweeper EventSweeper) *EventSweepJob {
	return &EventSweepJob{sweeper: sweeper}
}

// Process sweeps expired events, logging only when something was removed
func (j *EventSweepJob) Process(ctx context.Context) error {
	removed, err := j.sweeper.SweepExpiredEvents(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgEventSweepFailed, "error", err)
		return err
	}
	if removed > 0 {
		logger.FromContext(ctx).Info(LogMsgEventsExpired, "count", removed)
	}
	return nil
}
