package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarlsen/BloxClicker_Go/internal/achievement"
	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/metrics"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
)

// TriggerEvent starts a timed global modifier. Events of the same type stack
// multiplicatively; the name alone selects the god-luck behavior.
func (s *service) TriggerEvent(ctx context.Context, name string, eventType domain.EventType, multiplier float64, durationSeconds int) (*domain.GameEvent, error) {
	if name == "" || multiplier <= 0 || durationSeconds <= 0 {
		return nil, fmt.Errorf("%w: event needs a name, positive multiplier and duration", domain.ErrInvalidInput)
	}
	if eventType != domain.EventCurrency && eventType != domain.EventLuck {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kind := domain.EventKindStandard
	if name == domain.GodLuckEventName {
		kind = domain.EventKindGodLuck
	}

	event := domain.GameEvent{
		ID:              uuid.New().String(),
		Name:            name,
		Type:            eventType,
		Kind:            kind,
		Multiplier:      multiplier,
		DurationSeconds: durationSeconds,
		EndTime:         s.now().Add(time.Duration(durationSeconds) * time.Second),
	}
	s.state.ActiveEvents = append(s.state.ActiveEvents, event)

	metrics.EventsTriggered.WithLabelValues(string(eventType)).Inc()
	metrics.EventsActive.Set(float64(len(s.state.ActiveEvents)))

	logger.FromContext(ctx).Info(LogMsgEventTriggered,
		"name", name, "type", eventType, "multiplier", multiplier, "duration_s", durationSeconds)

	if s.hub != nil {
		s.hub.Broadcast(sse.EventTypeGameEvent, sse.GameEventPayload{
			EventID:    event.ID,
			Name:       event.Name,
			Type:       string(event.Type),
			Multiplier: event.Multiplier,
			Active:     true,
			EndTime:    event.EndTime.Unix(),
		})
	}

	s.persist(ctx, s.state.Clone())
	return &event, nil
}

// ClaimAchievement pays out a completed, unclaimed achievement. Claims are
// permanent and survive rebirth.
func (s *service) ClaimAchievement(ctx context.Context, achievementID string) (*ClaimResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := achievement.Def(achievementID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAchievement, achievementID)
	}
	if s.state.HasClaimed(achievementID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyClaimed, achievementID)
	}
	if !def.Completed(&s.state) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAchievementNotComplete, achievementID)
	}

	s.state.Gems += def.RewardGems
	s.state.ClaimedAchievementIDs = append(s.state.ClaimedAchievementIDs, achievementID)

	metrics.AchievementsClaimed.Inc()

	logger.FromContext(ctx).Info(LogMsgAchievementClaimed,
		"achievement", achievementID, "reward_gems", def.RewardGems)

	if s.hub != nil {
		s.hub.Broadcast(sse.EventTypeAchievement, sse.AchievementPayload{
			AchievementID: achievementID,
			Name:          def.Name,
			RewardGems:    def.RewardGems,
		})
	}

	s.persist(ctx, s.state.Clone())
	return &ClaimResult{
		AchievementID: achievementID,
		RewardGems:    def.RewardGems,
		Snapshot:      s.snapshotLocked(),
	}, nil
}
