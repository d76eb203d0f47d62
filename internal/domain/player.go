package domain

// Rarity is the pet rarity tier, ordered ascending.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityUltraRare Rarity = "Ultra Rare"
	RarityMythical  Rarity = "Mythical"
)

// rarityOrder maps each rarity to its ascending position.
var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityUltraRare: 5,
	RarityMythical:  6,
}

// IsValid reports whether r is a known rarity tier.
func (r Rarity) IsValid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// Pet is an owned pet instance. Immutable once created.
type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rarity      Rarity  `json:"rarity"`
	Multiplier  float64 `json:"multiplier"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
}

// UpgradeType distinguishes click upgrades from auto (passive) upgrades.
type UpgradeType string

const (
	UpgradeClick UpgradeType = "click"
	UpgradeAuto  UpgradeType = "auto"
)

// Upgrade is a purchasable power upgrade. Only Count mutates after creation.
type Upgrade struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	BaseCost       int         `json:"base_cost"`
	CostMultiplier float64     `json:"cost_multiplier"`
	PowerIncrease  int         `json:"power_increase"`
	Count          int         `json:"count"`
	Type           UpgradeType `json:"type"`
	Icon           string      `json:"icon"`
}

// GamePasses is the fixed set of permanent pass flags. Each is write-once true.
type GamePasses struct {
	VIP        bool `json:"vip"`
	ServerLuck bool `json:"server_luck"`
	Luck8x     bool `json:"luck_8x"`
	Luck15x    bool `json:"luck_15x"`
	Luck99x    bool `json:"luck_99x"`
}

// PassType identifies a gamepass.
type PassType string

const (
	PassVIP        PassType = "vip"
	PassServerLuck PassType = "server_luck"
	PassLuck8x     PassType = "luck_8x"
	PassLuck15x    PassType = "luck_15x"
	PassLuck99x    PassType = "luck_99x"
)

// Owned reports whether the given pass flag is set.
func (g GamePasses) Owned(t PassType) bool {
	switch t {
	case PassVIP:
		return g.VIP
	case PassServerLuck:
		return g.ServerLuck
	case PassLuck8x:
		return g.Luck8x
	case PassLuck15x:
		return g.Luck15x
	case PassLuck99x:
		return g.Luck99x
	}
	return false
}

// Set sets the given pass flag. Flags never unset.
func (g *GamePasses) Set(t PassType) {
	switch t {
	case PassVIP:
		g.VIP = true
	case PassServerLuck:
		g.ServerLuck = true
	case PassLuck8x:
		g.Luck8x = true
	case PassLuck15x:
		g.Luck15x = true
	case PassLuck99x:
		g.Luck99x = true
	}
}

// CurrencyKind names a spendable balance.
type CurrencyKind string

const (
	CurrencyStuds  CurrencyKind = "studs"
	CurrencyGems   CurrencyKind = "gems"
	CurrencyTokens CurrencyKind = "tokens"
)

// RankDefinition is a static rank table entry, ordered ascending by Threshold.
type RankDefinition struct {
	Name       string  `json:"name"`
	Threshold  int64   `json:"threshold"`
	Multiplier float64 `json:"multiplier"`
	Color      string  `json:"color"`
}

// ChatMessage is a single simulated chat line.
type ChatMessage struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Text     string `json:"text"`
	IsSystem bool   `json:"is_system,omitempty"`
}

// PlayerState is the single long-lived game state record. Mutated only through
// the game service's operation set; all derived rates are computed on read.
type PlayerState struct {
	Username              string      `json:"username,omitempty"`
	IsAdmin               bool        `json:"is_admin,omitempty"`
	Tags                  []string    `json:"tags,omitempty"`
	Currency              int64       `json:"currency"`
	Gems                  int64       `json:"gems"`
	Tokens                int64       `json:"tokens"`
	Aura                  int64       `json:"aura"`
	Rebirths              int         `json:"rebirths"`
	ClickPower            int64       `json:"click_power"`
	AutoPower             int64       `json:"auto_power"`
	CurrentIslandID       string      `json:"current_island_id"`
	OwnedIslandIDs        []string    `json:"owned_island_ids,omitempty"`
	Pets                  []Pet       `json:"pets"`
	Upgrades              []Upgrade   `json:"upgrades"`
	TotalClicks           int64       `json:"total_clicks"`
	GamePasses            GamePasses  `json:"gamepasses"`
	ActiveEvents          []GameEvent `json:"active_events"`
	ClaimedAchievementIDs []string    `json:"claimed_achievement_ids"`
}

// Clone returns a deep copy safe to hand to another goroutine.
func (p PlayerState) Clone() PlayerState {
	c := p
	c.Tags = append([]string(nil), p.Tags...)
	c.OwnedIslandIDs = append([]string(nil), p.OwnedIslandIDs...)
	c.Pets = append([]Pet(nil), p.Pets...)
	c.Upgrades = append([]Upgrade(nil), p.Upgrades...)
	c.ActiveEvents = append([]GameEvent(nil), p.ActiveEvents...)
	c.ClaimedAchievementIDs = append([]string(nil), p.ClaimedAchievementIDs...)
	return c
}

// UpgradeByID returns a pointer to the upgrade with the given id, or nil.
func (p *PlayerState) UpgradeByID(id string) *Upgrade {
	for i := range p.Upgrades {
		if p.Upgrades[i].ID == id {
			return &p.Upgrades[i]
		}
	}
	return nil
}

// HasClaimed reports whether the achievement id has already been claimed.
func (p *PlayerState) HasClaimed(id string) bool {
	for _, c := range p.ClaimedAchievementIDs {
		if c == id {
			return true
		}
	}
	return false
}

// OwnsIsland reports whether the island has been purchased. The spawn island
// is always owned.
func (p *PlayerState) OwnsIsland(id string) bool {
	if id == "spawn" {
		return true
	}
	for _, o := range p.OwnedIslandIDs {
		if o == id {
			return true
		}
	}
	return false
}

// Balance returns the current balance for the given currency kind.
func (p *PlayerState) Balance(kind CurrencyKind) int64 {
	switch kind {
	case CurrencyStuds:
		return p.Currency
	case CurrencyGems:
		return p.Gems
	case CurrencyTokens:
		return p.Tokens
	}
	return 0
}

// Deduct removes amount from the given balance. Callers must have verified
// affordability; Deduct never drives a balance negative on a checked spend.
func (p *PlayerState) Deduct(kind CurrencyKind, amount int64) {
	switch kind {
	case CurrencyStuds:
		p.Currency -= amount
	case CurrencyGems:
		p.Gems -= amount
	case CurrencyTokens:
		p.Tokens -= amount
	}
}
