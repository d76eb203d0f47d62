package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/metrics"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
)

// AddBalance credits a currency balance directly. Admin only.
func (s *service) AddBalance(ctx context.Context, kind domain.CurrencyKind, amount int64) (*Snapshot, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	switch kind {
	case domain.CurrencyStuds, domain.CurrencyGems, domain.CurrencyTokens:
	default:
		return nil, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidInput, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case domain.CurrencyStuds:
		s.state.Currency += amount
	case domain.CurrencyGems:
		s.state.Gems += amount
	case domain.CurrencyTokens:
		s.state.Tokens += amount
	}

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// ResetState wipes everything back to the default save. Admin only.
func (s *service) ResetState(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = registry.DefaultState()
	s.chat = nil

	metrics.EventsActive.Set(0)

	logger.FromContext(ctx).Warn(LogMsgStateReset)

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// Announce posts a system line to chat and pushes it to connected clients.
func (s *service) Announce(ctx context.Context, message string) error {
	if message == "" {
		return fmt.Errorf("%w: empty announcement", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	s.appendChatLocked(domain.ChatMessage{
		ID:       uuid.New().String(),
		User:     "System",
		Text:     message,
		IsSystem: true,
	})
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgAnnouncement, "message", message)

	if s.hub != nil {
		s.hub.Broadcast(sse.EventTypeAnnouncement, sse.AnnouncementPayload{Message: message})
	}
	return nil
}
