package sse

// ChatMessagePayload represents the SSE payload for a chat message
type ChatMessagePayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Text     string `json:"text"`
	SentAt   int64  `json:"sent_at"`
}

// AnnouncementPayload represents the SSE payload for a server announcement
type AnnouncementPayload struct {
	Message string `json:"message"`
}

// GameEventPayload represents the SSE payload for a timed event starting or expiring
type GameEventPayload struct {
	EventID    string  `json:"event_id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
	Active     bool    `json:"active"`
	EndTime    int64   `json:"end_time,omitempty"`
}

// AchievementPayload represents the SSE payload for a claimed achievement
type AchievementPayload struct {
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	RewardGems    int64  `json:"reward_gems"`
}

// HatchPayload represents the SSE payload for a resolved egg or lucky block
type HatchPayload struct {
	Source     string  `json:"source"` // egg tier or lucky block id
	PetName    string  `json:"pet_name"`
	Rarity     string  `json:"rarity"`
	Multiplier float64 `json:"multiplier"`
	Emoji      string  `json:"emoji"`
}
