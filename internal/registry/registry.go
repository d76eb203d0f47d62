// Package registry holds the static definitional data the game is built on:
// upgrade definitions, the rank table, gamepass pricing and factors, egg tiers,
// lucky blocks, islands, bosses and token-shop packs. Pure data, no behavior
// beyond lookups.
package registry

import "github.com/mkarlsen/BloxClicker_Go/internal/domain"

// Upgrades returns a fresh copy of the upgrade definitions with count zero.
// Callers own the returned slice; purchase counts mutate the player's copy.
func Upgrades() []domain.Upgrade {
	return []domain.Upgrade{
		{ID: "click1", Name: "Stronger Click", BaseCost: 15, CostMultiplier: 1.5, PowerIncrease: 1, Type: domain.UpgradeClick, Icon: "👆"},
		{ID: "auto1", Name: "Noob Auto Clicker", BaseCost: 50, CostMultiplier: 1.4, PowerIncrease: 1, Type: domain.UpgradeAuto, Icon: "🤖"},
		{ID: "click2", Name: "Super Gloves", BaseCost: 250, CostMultiplier: 1.6, PowerIncrease: 5, Type: domain.UpgradeClick, Icon: "🥊"},
		{ID: "auto2", Name: "Pro Auto Clicker", BaseCost: 1000, CostMultiplier: 1.5, PowerIncrease: 10, Type: domain.UpgradeAuto, Icon: "👨‍💻"},
		{ID: "click3", Name: "Godly Touch", BaseCost: 5000, CostMultiplier: 1.8, PowerIncrease: 25, Type: domain.UpgradeClick, Icon: "⚡"},
	}
}

// Ranks is the rank table, ordered ascending by threshold.
var Ranks = []domain.RankDefinition{
	{Name: "Noob", Threshold: 0, Multiplier: 1, Color: "gray"},
	{Name: "Beginner", Threshold: 1_000, Multiplier: 1.25, Color: "green"},
	{Name: "Pro", Threshold: 10_000, Multiplier: 1.5, Color: "blue"},
	{Name: "Elite", Threshold: 50_000, Multiplier: 2, Color: "purple"},
	{Name: "Hacker", Threshold: 250_000, Multiplier: 3.5, Color: "red"},
	{Name: "God", Threshold: 1_000_000, Multiplier: 5, Color: "yellow"},
	{Name: "Developer", Threshold: 10_000_000, Multiplier: 10, Color: "cyan"},
}

// RankFor returns the highest-threshold rank reached at the given click total.
func RankFor(totalClicks int64) domain.RankDefinition {
	current := Ranks[0]
	for _, r := range Ranks {
		if totalClicks >= r.Threshold {
			current = r
		}
	}
	return current
}

// NextRank returns the lowest-threshold rank not yet reached, or false at max rank.
func NextRank(totalClicks int64) (domain.RankDefinition, bool) {
	for _, r := range Ranks {
		if r.Threshold > totalClicks {
			return r, true
		}
	}
	return domain.RankDefinition{}, false
}

// GamePassDefinition is a purchasable permanent pass.
type GamePassDefinition struct {
	Type     domain.PassType
	Name     string
	Factor   float64
	Cost     int64
	Currency domain.CurrencyKind
}

// GamePassDefs lists every pass with its fixed multiplier factor and price.
var GamePassDefs = []GamePassDefinition{
	{Type: domain.PassVIP, Name: "V.I.P Rank", Factor: 2, Cost: 500, Currency: domain.CurrencyGems},
	{Type: domain.PassServerLuck, Name: "10x Server Luck", Factor: 10, Cost: 1_000, Currency: domain.CurrencyGems},
	{Type: domain.PassLuck8x, Name: "8x Luck", Factor: 8, Cost: 2_000, Currency: domain.CurrencyGems},
	{Type: domain.PassLuck15x, Name: "15x Luck", Factor: 15, Cost: 4_500, Currency: domain.CurrencyGems},
	{Type: domain.PassLuck99x, Name: "99x GOD Luck", Factor: 99, Cost: 1_000_000_000, Currency: domain.CurrencyGems},
}

// GamePassDef looks up a pass definition by type.
func GamePassDef(t domain.PassType) (GamePassDefinition, bool) {
	for _, d := range GamePassDefs {
		if d.Type == t {
			return d, true
		}
	}
	return GamePassDefinition{}, false
}

// PassFactor returns the multiplier factor for an owned pass, 1 otherwise.
func PassFactor(owned domain.GamePasses, t domain.PassType) float64 {
	if !owned.Owned(t) {
		return 1
	}
	d, ok := GamePassDef(t)
	if !ok {
		return 1
	}
	return d.Factor
}

// EggTier identifies a hatchable egg.
type EggTier string

const (
	EggBasic   EggTier = "Basic"
	EggGolden  EggTier = "Golden"
	EggDiamond EggTier = "Diamond"
	EggWinter  EggTier = "Winter"
)

// EggDefinition prices an egg tier.
type EggDefinition struct {
	Tier     EggTier
	Cost     int64
	Currency domain.CurrencyKind
}

// EggDefs lists the hatchable egg tiers.
var EggDefs = []EggDefinition{
	{Tier: EggBasic, Cost: 500, Currency: domain.CurrencyStuds},
	{Tier: EggGolden, Cost: 2_500, Currency: domain.CurrencyStuds},
	{Tier: EggDiamond, Cost: 10_000, Currency: domain.CurrencyStuds},
	{Tier: EggWinter, Cost: 5_000, Currency: domain.CurrencyGems},
}

// EggDef looks up an egg definition by tier.
func EggDef(tier EggTier) (EggDefinition, bool) {
	for _, d := range EggDefs {
		if d.Tier == tier {
			return d, true
		}
	}
	return EggDefinition{}, false
}

// LuckyBlockDefinition prices a lucky block. Locked blocks are registered but
// cannot be opened yet.
type LuckyBlockDefinition struct {
	ID       string
	Name     string
	Cost     int64
	Currency domain.CurrencyKind
	Tier     EggTier // egg tier the block resolves through
	Locked   bool
}

// LuckyBlockDefs lists the lucky blocks.
var LuckyBlockDefs = []LuckyBlockDefinition{
	{ID: "christmas", Name: "Christmas Lucky Block", Cost: 5_000, Currency: domain.CurrencyGems, Tier: EggWinter},
	{ID: "halloween", Name: "Halloween Lucky Block", Cost: 6_666, Currency: domain.CurrencyGems, Tier: EggGolden},
	{ID: "summer", Name: "Summer Lucky Block", Cost: 500_000, Currency: domain.CurrencyStuds, Tier: EggGolden},
	{ID: "lava", Name: "Lava Lucky Block", Cost: 5_000_000, Currency: domain.CurrencyStuds, Tier: EggDiamond},
	{ID: "owner", Name: "Owner's Lucky Block", Cost: 1_000, Currency: domain.CurrencyTokens, Tier: EggDiamond},
	{ID: "festive_2025", Name: "Festive Present", Cost: 25_000, Currency: domain.CurrencyGems, Tier: EggWinter},
	{ID: "brainrot", Name: "Brainrot Lucky Block", Cost: 0, Currency: domain.CurrencyTokens, Tier: EggBasic, Locked: true},
}

// LuckyBlockDef looks up a lucky block by id.
func LuckyBlockDef(id string) (LuckyBlockDefinition, bool) {
	for _, d := range LuckyBlockDefs {
		if d.ID == id {
			return d, true
		}
	}
	return LuckyBlockDefinition{}, false
}

// IslandDefinition is a purchasable island with a currency multiplier.
type IslandDefinition struct {
	ID         string
	Name       string
	Multiplier float64
	Cost       int64
}

// IslandDefs lists the islands. Spawn is free and owned by default.
var IslandDefs = []IslandDefinition{
	{ID: "spawn", Name: "Spawn Island", Multiplier: 1, Cost: 0},
	{ID: "desert", Name: "Sand Dunes", Multiplier: 2.5, Cost: 50_000},
	{ID: "candy", Name: "Candy Land", Multiplier: 5, Cost: 250_000},
	{ID: "magma", Name: "Magma Ridge", Multiplier: 10, Cost: 1_000_000},
	{ID: "cyber", Name: "Cyber City", Multiplier: 25, Cost: 10_000_000},
	{ID: "northpole", Name: "North Pole", Multiplier: 100, Cost: 250_000_000},
	{ID: "ohio", Name: "Ohio (Limited)", Multiplier: 50, Cost: 50_000_000},
}

// IslandDef looks up an island by id.
func IslandDef(id string) (IslandDefinition, bool) {
	for _, d := range IslandDefs {
		if d.ID == id {
			return d, true
		}
	}
	return IslandDefinition{}, false
}

// BossDefinition is a fightable boss. Combat presentation is client-side; the
// core only credits the token reward on defeat.
type BossDefinition struct {
	ID     int
	Name   string
	HP     int64
	Reward int64 // tokens
}

// BossDefs lists the bosses.
var BossDefs = []BossDefinition{
	{ID: 1, Name: "Noob King", HP: 1_000, Reward: 10},
	{ID: 2, Name: "Slime Golem", HP: 5_000, Reward: 50},
	{ID: 3, Name: "Magma Lord", HP: 25_000, Reward: 250},
	{ID: 4, Name: "Void Guardian", HP: 100_000, Reward: 1_000},
	{ID: 5, Name: "Evil Santa", HP: 500_000, Reward: 5_000},
}

// BossDef looks up a boss by id.
func BossDef(id int) (BossDefinition, bool) {
	for _, d := range BossDefs {
		if d.ID == id {
			return d, true
		}
	}
	return BossDefinition{}, false
}

// GemPackDefinition is a token-shop bundle converting tokens to gems.
type GemPackDefinition struct {
	ID   string
	Gems int64
	Cost int64 // tokens
}

// GemPackDefs lists the token-shop gem packs.
var GemPackDefs = []GemPackDefinition{
	{ID: "gems_1k", Gems: 1_000, Cost: 10},
	{ID: "gems_10k", Gems: 10_000, Cost: 80},
	{ID: "gems_100k", Gems: 100_000, Cost: 750},
	{ID: "gems_1m", Gems: 1_000_000, Cost: 5_000},
	{ID: "gems_100m", Gems: 100_000_000, Cost: 250_000},
}

// GemPackDef looks up a gem pack by id.
func GemPackDef(id string) (GemPackDefinition, bool) {
	for _, d := range GemPackDefs {
		if d.ID == id {
			return d, true
		}
	}
	return GemPackDefinition{}, false
}

// NameTagDefinition is a purchasable chat tag.
type NameTagDefinition struct {
	Tag  string
	Cost int64 // studs
}

// NameTagDefs lists the purchasable name tags.
var NameTagDefs = []NameTagDefinition{
	{Tag: "MoneySpender", Cost: 50_000},
	{Tag: "Brainrot", Cost: 10_000},
}

// NameTagDef looks up a name tag.
func NameTagDef(tag string) (NameTagDefinition, bool) {
	for _, d := range NameTagDefs {
		if d.Tag == tag {
			return d, true
		}
	}
	return NameTagDefinition{}, false
}

// DefaultState returns the initial player state for a fresh save.
func DefaultState() domain.PlayerState {
	return domain.PlayerState{
		Currency:              0,
		Gems:                  0,
		Tokens:                0,
		Aura:                  0,
		Rebirths:              0,
		ClickPower:            1,
		AutoPower:             0,
		CurrentIslandID:       "spawn",
		Pets:                  []domain.Pet{},
		Upgrades:              Upgrades(),
		TotalClicks:           0,
		ActiveEvents:          []domain.GameEvent{},
		ClaimedAchievementIDs: []string{},
	}
}
