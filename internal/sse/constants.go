package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeChatMessage is sent when a new chat message lands
	EventTypeChatMessage = "chat.message"

	// EventTypeAnnouncement is sent for server-wide announcements
	EventTypeAnnouncement = "server.announcement"

	// EventTypeGameEvent is sent when a timed game event starts or expires
	EventTypeGameEvent = "game.event"

	// EventTypeAchievement is sent when an achievement is claimed
	EventTypeAchievement = "achievement.claimed"

	// EventTypeHatch is sent when an egg or lucky block resolves
	EventTypeHatch = "hatch.resolved"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
)
