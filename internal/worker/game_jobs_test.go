package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	calls int
	err   error
}

func (f *fakeTicker) Tick(ctx context.Context) error {
	f.calls++
	return f.err
}

type fakeSweeper struct {
	removed int
	err     error
}

func (f *fakeSweeper) SweepExpiredEvents(ctx context.Context) (int, error) {
	return f.removed, f.err
}

func TestAutoTickJob_Process(t *testing.T) {
	ticker := &fakeTicker{}
	job := NewAutoTickJob(ticker)

	err := job.Process(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ticker.calls)
}

func TestAutoTickJob_PropagatesError(t *testing.T) {
	ticker := &fakeTicker{err: errors.New("store unavailable")}
	job := NewAutoTickJob(ticker)

	err := job.Process(context.Background())
	assert.Error(t, err)
}

func TestEventSweepJob_Process(t *testing.T) {
	job := NewEventSweepJob(&fakeSweeper{removed: 2})
	require.NoError(t, job.Process(context.Background()))

	job = NewEventSweepJob(&fakeSweeper{err: errors.New("store unavailable")})
	assert.Error(t, job.Process(context.Background()))
}
