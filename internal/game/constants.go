package game

// ChatMaxMessages caps the in-memory chat log. Oldest lines are dropped first.
const ChatMaxMessages = 50

// DefaultUsername is used for player-sent chat lines when no name is set.
const DefaultUsername = "Player"

// ============================================================================
// Log Messages
// ============================================================================

// Log messages for game service operations
const (
	LogMsgStateLoaded        = "Player state loaded"
	LogMsgSaveFailed         = "Failed to persist player state"
	LogMsgClickProcessed     = "Click processed"
	LogMsgUpgradePurchased   = "Upgrade purchased"
	LogMsgRebirthCompleted   = "Rebirth completed"
	LogMsgGamepassPurchased  = "Gamepass purchased"
	LogMsgIslandPurchased    = "Island purchased"
	LogMsgBossDefeated       = "Boss defeated"
	LogMsgEventTriggered     = "Game event triggered"
	LogMsgAchievementClaimed = "Achievement claimed"
	LogMsgStateReset         = "Player state reset"
	LogMsgAnnouncement       = "Announcement broadcast"
	LogMsgChatGenerated      = "Chat batch generated"
	LogMsgShuttingDown       = "Shutting down game service"
	LogMsgShutdownComplete   = "Game service shutdown complete"
	LogMsgShutdownForced     = "Game service shutdown timed out, pending saves abandoned"
)
