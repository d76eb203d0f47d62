package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
)

// ChatLine is one simulated chat message before identity assignment.
type ChatLine struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// chatCache memoizes recent chat batches per context summary so a chat tab
// polling every few seconds doesn't hammer the remote endpoint.
type chatCache struct {
	lru *expirable.LRU[string, []ChatLine]
}

func newChatCache(size int, ttl time.Duration) *chatCache {
	return &chatCache{lru: expirable.NewLRU[string, []ChatLine](size, nil, ttl)}
}

// GenerateChatMessages fabricates a short batch of chat lines for the given
// context summary. Failures yield the fixed reconnect line, never an error.
func (c *Client) GenerateChatMessages(ctx context.Context, contextSummary string) []ChatLine {
	if cached, ok := c.chatCache.lru.Get(contextSummary); ok {
		return cached
	}

	if !c.remoteEnabled() {
		return fallbackChat()
	}

	text, err := c.generate(ctx, chatPrompt(contextSummary))
	if err != nil {
		logger.FromContext(ctx).Warn("Chat generation call failed", "error", err)
		return fallbackChat()
	}

	var lines []ChatLine
	if err := json.Unmarshal([]byte(text), &lines); err != nil {
		logger.FromContext(ctx).Warn("Chat generation returned invalid JSON", "error", err)
		return fallbackChat()
	}

	// Drop malformed entries instead of rejecting the batch.
	clean := lines[:0]
	for _, l := range lines {
		l.User = strings.TrimSpace(l.User)
		l.Text = strings.TrimSpace(l.Text)
		if l.User != "" && l.Text != "" {
			clean = append(clean, l)
		}
	}
	if len(clean) == 0 {
		return fallbackChat()
	}

	c.chatCache.lru.Add(contextSummary, clean)
	return clean
}

func fallbackChat() []ChatLine {
	return []ChatLine{{User: "System", Text: "Chat server reconnecting..."}}
}

func chatPrompt(contextSummary string) string {
	return fmt.Sprintf(`Generate 3 short, realistic chat messages you would see in a clicker simulator game.
The current context of the game server is: %s.
Include a mix of trading requests, new players asking how to play, flexing about pets, and reactions to active events.
Output ONLY a JSON array of objects with 'user' and 'text' properties. Usernames should look like game usernames.`, contextSummary)
}
