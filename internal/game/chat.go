package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/economy"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
)

// ChatMessages returns the chat log, topping it up with a freshly generated
// batch of simulated lines. The log is in-memory only and capped at
// ChatMaxMessages; the generator is called outside the state lock.
func (s *service) ChatMessages(ctx context.Context) ([]domain.ChatMessage, error) {
	summary := s.chatContextSummary()

	var generated []domain.ChatMessage
	if s.gen != nil {
		for _, line := range s.gen.GenerateChatMessages(ctx, summary) {
			generated = append(generated, domain.ChatMessage{
				ID:   uuid.New().String(),
				User: line.User,
				Text: line.Text,
			})
		}
		logger.FromContext(ctx).Debug(LogMsgChatGenerated, "count", len(generated))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendChatLocked(generated...)
	return append([]domain.ChatMessage(nil), s.chat...), nil
}

// SendChat appends a player-authored line to the chat log.
func (s *service) SendChat(ctx context.Context, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty chat message", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.state.Username
	if user == "" {
		user = DefaultUsername
	}
	msg := domain.ChatMessage{
		ID:   uuid.New().String(),
		User: user,
		Text: text,
	}
	s.appendChatLocked(msg)

	if s.hub != nil {
		s.hub.Broadcast(sse.EventTypeChatMessage, sse.ChatMessagePayload{
			ID:       msg.ID,
			Username: msg.User,
			Text:     msg.Text,
			SentAt:   s.now().Unix(),
		})
	}
	return &msg, nil
}

// appendChatLocked appends lines and trims the log to the cap. Caller must
// hold s.mu.
func (s *service) appendChatLocked(msgs ...domain.ChatMessage) {
	s.chat = append(s.chat, msgs...)
	if len(s.chat) > ChatMaxMessages {
		s.chat = s.chat[len(s.chat)-ChatMaxMessages:]
	}
}

// chatContextSummary describes the current game situation for the generator,
// so simulated chatter reacts to rank, events and collection size.
func (s *service) chatContextSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	breakdown := economy.Compute(&s.state, s.now())

	var events []string
	for _, e := range s.state.ActiveEvents {
		if !e.Expired(s.now()) {
			events = append(events, e.Name)
		}
	}
	active := "none"
	if len(events) > 0 {
		active = strings.Join(events, ", ")
	}

	return fmt.Sprintf("rank %s, %d rebirths, %d pets owned, active events: %s",
		breakdown.Rank.Name, s.state.Rebirths, len(s.state.Pets), active)
}
