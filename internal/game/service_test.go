package game

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// fakeStore is an in-memory Store recording every save.
type fakeStore struct {
	mu    sync.Mutex
	state domain.PlayerState
	saves int
}

func (f *fakeStore) Load(ctx context.Context) (domain.PlayerState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone(), nil
}

func (f *fakeStore) Save(ctx context.Context, state domain.PlayerState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
	f.saves++
	return nil
}

func (f *fakeStore) Close() error { return nil }

// testClock is an adjustable now() source.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, initial domain.PlayerState) (Service, *fakeStore, *testClock) {
	t.Helper()
	store := &fakeStore{state: initial}
	clock := newTestClock()

	svc, err := NewService(context.Background(), store, nil, nil, clock.Now)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = svc.Shutdown(ctx)
	})
	return svc, store, clock
}

func TestClick_EarnsEffectivePower(t *testing.T) {
	state := registry.DefaultState()
	state.ClickPower = 10
	svc, _, _ := newTestService(t, state)

	result, err := svc.Click(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Earned)
	assert.Equal(t, int64(10), result.Snapshot.State.Currency)
	assert.Equal(t, int64(1), result.Snapshot.State.TotalClicks)
}

func TestTick_NoopWithoutAutoPower(t *testing.T) {
	svc, store, _ := newTestService(t, registry.DefaultState())

	require.NoError(t, svc.Tick(context.Background()))

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap.State.Currency)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 0, store.saves, "a no-op tick must not persist")
}

func TestTick_CreditsAutoPower(t *testing.T) {
	state := registry.DefaultState()
	state.AutoPower = 7
	svc, _, _ := newTestService(t, state)

	require.NoError(t, svc.Tick(context.Background()))

	snap, _ := svc.Snapshot(context.Background())
	assert.Equal(t, int64(7), snap.State.Currency)
}

func TestClick_EmitsDebugLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc, _, _ := newTestService(t, registry.DefaultState())

	_, err := svc.Click(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), LogMsgClickProcessed)
}

func TestSchedulingConditions(t *testing.T) {
	ctx := context.Background()
	svc, _, clock := newTestService(t, registry.DefaultState())

	// Fresh save: no auto power, no events, so neither job should be fed.
	assert.False(t, svc.AutoPowerActive(ctx))
	assert.False(t, svc.HasActiveEvents(ctx))

	state := registry.DefaultState()
	state.AutoPower = 3
	auto, _, _ := newTestService(t, state)
	assert.True(t, auto.AutoPowerActive(ctx))

	// Triggering an event arms the sweep; sweeping the expired event
	// disarms it again.
	_, err := svc.TriggerEvent(ctx, "Double Studs", domain.EventCurrency, 2, 30)
	require.NoError(t, err)
	assert.True(t, svc.HasActiveEvents(ctx))

	clock.Advance(31 * time.Second)
	removed, err := svc.SweepExpiredEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.False(t, svc.HasActiveEvents(ctx))
}

func TestTriggerEvent_GodLuckKindFromName(t *testing.T) {
	svc, _, _ := newTestService(t, registry.DefaultState())

	event, err := svc.TriggerEvent(context.Background(), domain.GodLuckEventName, domain.EventLuck, 99, 60)
	require.NoError(t, err)
	assert.Equal(t, domain.EventKindGodLuck, event.Kind)

	// Any other name stays standard.
	event, err = svc.TriggerEvent(context.Background(), "Double Studs", domain.EventCurrency, 2, 60)
	require.NoError(t, err)
	assert.Equal(t, domain.EventKindStandard, event.Kind)
}

func TestTriggerEvent_Validation(t *testing.T) {
	svc, _, _ := newTestService(t, registry.DefaultState())
	ctx := context.Background()

	_, err := svc.TriggerEvent(ctx, "", domain.EventCurrency, 2, 60)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.TriggerEvent(ctx, "x", domain.EventCurrency, 0, 60)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.TriggerEvent(ctx, "x", domain.EventType("bogus"), 2, 60)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSweepExpiredEvents(t *testing.T) {
	svc, _, clock := newTestService(t, registry.DefaultState())
	ctx := context.Background()

	_, err := svc.TriggerEvent(ctx, "Short", domain.EventCurrency, 2, 30)
	require.NoError(t, err)
	_, err = svc.TriggerEvent(ctx, "Long", domain.EventCurrency, 3, 300)
	require.NoError(t, err)

	// Nothing expired yet.
	removed, err := svc.SweepExpiredEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	clock.Advance(31 * time.Second)
	removed, err = svc.SweepExpiredEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	snap, _ := svc.Snapshot(ctx)
	require.Len(t, snap.State.ActiveEvents, 1)
	assert.Equal(t, "Long", snap.State.ActiveEvents[0].Name)
}

func TestClaimAchievement_Lifecycle(t *testing.T) {
	state := registry.DefaultState()
	state.TotalClicks = 150
	svc, _, _ := newTestService(t, state)
	ctx := context.Background()

	result, err := svc.ClaimAchievement(ctx, "clicks_100")
	require.NoError(t, err)
	assert.Equal(t, int64(50), result.RewardGems)
	assert.Equal(t, int64(50), result.Snapshot.State.Gems)

	// Claims are permanent.
	_, err = svc.ClaimAchievement(ctx, "clicks_100")
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

	_, err = svc.ClaimAchievement(ctx, "clicks_1000")
	assert.ErrorIs(t, err, domain.ErrAchievementNotComplete)

	_, err = svc.ClaimAchievement(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownAchievement)
}

func TestSpendForHatch(t *testing.T) {
	state := registry.DefaultState()
	state.Currency = 600
	svc, _, _ := newTestService(t, state)
	ctx := context.Background()

	require.NoError(t, svc.SpendForHatch(ctx, domain.CurrencyStuds, 500))

	// The deduction is final even though nothing was granted yet.
	snap, _ := svc.Snapshot(ctx)
	assert.Equal(t, int64(100), snap.State.Currency)

	err := svc.SpendForHatch(ctx, domain.CurrencyStuds, 500)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestGrantPet_AssignsID(t *testing.T) {
	svc, _, _ := newTestService(t, registry.DefaultState())
	ctx := context.Background()

	require.NoError(t, svc.GrantPet(ctx, domain.Pet{Name: "Frost Wolf", Multiplier: 5}))

	snap, _ := svc.Snapshot(ctx)
	require.Len(t, snap.State.Pets, 1)
	assert.NotEmpty(t, snap.State.Pets[0].ID)
	assert.Equal(t, 5.0, snap.Breakdown.PetMultiplier)
}

func TestLuckMultiplier(t *testing.T) {
	state := registry.DefaultState()
	state.GamePasses.Set(domain.PassLuck8x)
	svc, _, _ := newTestService(t, state)

	_, err := svc.TriggerEvent(context.Background(), "Luck Boost", domain.EventLuck, 2, 60)
	require.NoError(t, err)

	assert.Equal(t, 16.0, svc.LuckMultiplier(context.Background()))
}

func TestSendChat_AndCap(t *testing.T) {
	svc, _, _ := newTestService(t, registry.DefaultState())
	ctx := context.Background()

	msg, err := svc.SendChat(ctx, "trading my neon dragon")
	require.NoError(t, err)
	assert.Equal(t, DefaultUsername, msg.User)

	_, err = svc.SendChat(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	for i := 0; i < ChatMaxMessages+10; i++ {
		_, err = svc.SendChat(ctx, "spam")
		require.NoError(t, err)
	}
	log, err := svc.ChatMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, log, ChatMaxMessages)
}

func TestShutdown_WritesFinalSave(t *testing.T) {
	store := &fakeStore{state: registry.DefaultState()}
	clock := newTestClock()
	svc, err := NewService(context.Background(), store, nil, nil, clock.Now)
	require.NoError(t, err)

	_, err = svc.Click(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, int64(1), store.state.TotalClicks)
	assert.GreaterOrEqual(t, store.saves, 2)
}
