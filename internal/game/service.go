// Package game is the progression state machine: every mutation of the player
// state goes through the Service, which serializes transitions under one lock,
// recomputes derived rates through the economy engine and persists the result
// asynchronously.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkarlsen/BloxClicker_Go/internal/achievement"
	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/economy"
	"github.com/mkarlsen/BloxClicker_Go/internal/genai"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/metrics"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
	"github.com/mkarlsen/BloxClicker_Go/internal/repository"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
)

// Service defines the interface for game state operations
type Service interface {
	// Reads
	Snapshot(ctx context.Context) (*Snapshot, error)
	ChatMessages(ctx context.Context) ([]domain.ChatMessage, error)

	// Production
	Click(ctx context.Context) (*ClickResult, error)
	Tick(ctx context.Context) error
	SweepExpiredEvents(ctx context.Context) (int, error)

	// Scheduling conditions for the periodic jobs
	AutoPowerActive(ctx context.Context) bool
	HasActiveEvents(ctx context.Context) bool

	// Purchases and progression
	BuyUpgrade(ctx context.Context, upgradeID string) (*Snapshot, error)
	Rebirth(ctx context.Context) (*RebirthResult, error)
	BuyGamepass(ctx context.Context, pass domain.PassType) (*Snapshot, error)
	BuyIsland(ctx context.Context, islandID string) (*Snapshot, error)
	SelectIsland(ctx context.Context, islandID string) (*Snapshot, error)
	DefeatBoss(ctx context.Context, bossID int) (*BossResult, error)
	BuyGemPack(ctx context.Context, packID string) (*Snapshot, error)
	BuyNameTag(ctx context.Context, tag string) (*Snapshot, error)
	ClaimAchievement(ctx context.Context, achievementID string) (*ClaimResult, error)

	// Events
	TriggerEvent(ctx context.Context, name string, eventType domain.EventType, multiplier float64, durationSeconds int) (*domain.GameEvent, error)

	// Chat
	SendChat(ctx context.Context, text string) (*domain.ChatMessage, error)

	// Hatch support
	SpendForHatch(ctx context.Context, kind domain.CurrencyKind, amount int64) error
	GrantPet(ctx context.Context, pet domain.Pet) error
	LuckMultiplier(ctx context.Context) float64

	// Admin
	AddBalance(ctx context.Context, kind domain.CurrencyKind, amount int64) (*Snapshot, error)
	ResetState(ctx context.Context) (*Snapshot, error)
	Announce(ctx context.Context, message string) error

	Shutdown(ctx context.Context) error
}

type service struct {
	store repository.Store
	hub   *sse.Hub
	gen   *genai.Client
	now   func() time.Time

	mu    sync.Mutex
	state domain.PlayerState
	chat  []domain.ChatMessage

	wg sync.WaitGroup // tracks async persistence for graceful shutdown
}

// NewService loads the persisted state and returns a ready game service.
// The now func is injectable for deterministic event-expiry tests.
func NewService(ctx context.Context, store repository.Store, hub *sse.Hub, gen *genai.Client, now func() time.Time) (Service, error) {
	if now == nil {
		now = time.Now
	}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgStateLoaded,
		"currency", state.Currency,
		"rebirths", state.Rebirths,
		"pets", len(state.Pets))

	metrics.EventsActive.Set(float64(len(state.ActiveEvents)))

	return &service{
		store: store,
		hub:   hub,
		gen:   gen,
		now:   now,
		state: state,
	}, nil
}

// persist saves a deep copy of the state off the hot path. The detached
// context keeps a request cancellation from losing the write.
func (s *service) persist(ctx context.Context, snapshot domain.PlayerState) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.store.Save(context.Background(), snapshot); err != nil {
			logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
		}
	}()
}

// snapshotLocked builds the full derived view. Caller must hold s.mu.
func (s *service) snapshotLocked() *Snapshot {
	breakdown := economy.Compute(&s.state, s.now())

	costs := make(map[string]int64, len(s.state.Upgrades))
	for _, u := range s.state.Upgrades {
		costs[u.ID] = economy.UpgradeCost(u)
	}

	snap := &Snapshot{
		State:        s.state.Clone(),
		Breakdown:    breakdown,
		UpgradeCosts: costs,
		RebirthCost:  economy.RebirthCost(s.state.Rebirths),
		RebirthGems:  economy.RebirthGems(s.state.Rebirths),
		Achievements: achievement.Evaluate(&s.state),
	}
	if next, ok := registry.NextRank(s.state.TotalClicks); ok {
		snap.NextRank = &next
	}
	return snap
}

// Snapshot returns the current state with the full rate breakdown.
func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Click applies one manual click at the current effective rate.
func (s *service) Click(ctx context.Context) (*ClickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	breakdown := economy.Compute(&s.state, s.now())
	earned := breakdown.EffectiveClickPower

	s.state.Currency += earned
	s.state.TotalClicks++

	metrics.ClicksTotal.Inc()
	metrics.StudsEarned.Add(float64(earned))

	logger.FromContext(ctx).Debug(LogMsgClickProcessed,
		"earned", earned, "total_clicks", s.state.TotalClicks)

	s.persist(ctx, s.state.Clone())

	return &ClickResult{
		Earned:   earned,
		Snapshot: s.snapshotLocked(),
	}, nil
}

// Tick applies one second of automatic production. With no auto power this is
// a no-op and nothing is persisted.
func (s *service) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.AutoPower == 0 {
		return nil
	}

	breakdown := economy.Compute(&s.state, s.now())
	s.state.Currency += breakdown.EffectiveAutoPower

	metrics.StudsEarned.Add(float64(breakdown.EffectiveAutoPower))

	s.persist(ctx, s.state.Clone())
	return nil
}

// SweepExpiredEvents drops events whose window has closed and reports how many
// were removed. With nothing expired the state is untouched.
func (s *service) SweepExpiredEvents(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.state.ActiveEvents[:0]
	var expired []domain.GameEvent
	for _, e := range s.state.ActiveEvents {
		if e.Expired(now) {
			expired = append(expired, e)
		} else {
			kept = append(kept, e)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}

	s.state.ActiveEvents = kept
	metrics.EventsActive.Set(float64(len(kept)))

	if s.hub != nil {
		for _, e := range expired {
			s.hub.Broadcast(sse.EventTypeGameEvent, sse.GameEventPayload{
				EventID:    e.ID,
				Name:       e.Name,
				Type:       string(e.Type),
				Multiplier: e.Multiplier,
				Active:     false,
			})
		}
	}

	s.persist(ctx, s.state.Clone())
	return len(expired), nil
}

// AutoPowerActive reports whether the auto producer has anything to do. The
// scheduler checks this before each tick so no periodic work runs at zero
// auto power.
func (s *service) AutoPowerActive(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AutoPower > 0
}

// HasActiveEvents reports whether any timed event is still on the books,
// expired-but-unswept ones included. The sweep stops scheduling once this
// goes false.
func (s *service) HasActiveEvents(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.ActiveEvents) > 0
}

// SpendForHatch atomically verifies and deducts the draw cost. The deduction
// is final; a failed draw is not refunded.
func (s *service) SpendForHatch(ctx context.Context, kind domain.CurrencyKind, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Balance(kind) < amount {
		return fmt.Errorf("%w: need %d %s", domain.ErrInsufficientFunds, amount, kind)
	}
	s.state.Deduct(kind, amount)

	if kind == domain.CurrencyStuds {
		metrics.StudsSpent.Add(float64(amount))
	}

	s.persist(ctx, s.state.Clone())
	return nil
}

// GrantPet appends a resolved pet to the collection.
func (s *service) GrantPet(ctx context.Context, pet domain.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	s.state.Pets = append(s.state.Pets, pet)

	s.persist(ctx, s.state.Clone())
	return nil
}

// LuckMultiplier returns the current total luck factor for the reward resolver.
func (s *service) LuckMultiplier(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return economy.Compute(&s.state, s.now()).TotalLuckMultiplier
}

// Shutdown waits for in-flight saves, then writes one final synchronous save.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn(LogMsgShutdownForced)
		return ctx.Err()
	}

	s.mu.Lock()
	final := s.state.Clone()
	s.mu.Unlock()

	if err := s.store.Save(ctx, final); err != nil {
		return fmt.Errorf("final save failed: %w", err)
	}
	log.Info(LogMsgShutdownComplete)
	return nil
}
