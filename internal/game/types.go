package game

import (
	"github.com/mkarlsen/BloxClicker_Go/internal/achievement"
	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/economy"
)

// Snapshot is the full derived view returned by reads and most mutations:
// the raw state plus everything computed from it.
type Snapshot struct {
	State        domain.PlayerState     `json:"state"`
	Breakdown    economy.Breakdown      `json:"breakdown"`
	UpgradeCosts map[string]int64       `json:"upgrade_costs"`
	RebirthCost  int64                  `json:"rebirth_cost"`
	RebirthGems  int64                  `json:"rebirth_gems"`
	NextRank     *domain.RankDefinition `json:"next_rank,omitempty"`
	Achievements []achievement.Status   `json:"achievements"`
}

// ClickResult reports one processed click.
type ClickResult struct {
	Earned   int64     `json:"earned"`
	Snapshot *Snapshot `json:"snapshot"`
}

// RebirthResult reports a completed rebirth.
type RebirthResult struct {
	GemsAwarded int64     `json:"gems_awarded"`
	Rebirths    int       `json:"rebirths"`
	Snapshot    *Snapshot `json:"snapshot"`
}

// BossResult reports a credited boss defeat.
type BossResult struct {
	BossName      string    `json:"boss_name"`
	TokensAwarded int64     `json:"tokens_awarded"`
	Snapshot      *Snapshot `json:"snapshot"`
}

// ClaimResult reports a claimed achievement.
type ClaimResult struct {
	AchievementID string    `json:"achievement_id"`
	RewardGems    int64     `json:"reward_gems"`
	Snapshot      *Snapshot `json:"snapshot"`
}
