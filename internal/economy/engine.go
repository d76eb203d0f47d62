// Package economy derives the effective click/auto rates from player state and
// the static registries. Everything here is a pure function of its inputs:
// rates are recomputed on every read and never cached, because every term
// depends on mutable state or wall-clock time.
package economy

import (
	"math"
	"time"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// Breakdown is the full multiplier decomposition for the current state.
type Breakdown struct {
	PetMultiplier           float64               `json:"pet_multiplier"`
	RebirthMultiplier       float64               `json:"rebirth_multiplier"`
	GamepassMultiplier      float64               `json:"gamepass_multiplier"`
	RankMultiplier          float64               `json:"rank_multiplier"`
	EventCurrencyMultiplier float64               `json:"event_currency_multiplier"`
	EventLuckMultiplier     float64               `json:"event_luck_multiplier"`
	TotalMultiplier         float64               `json:"total_multiplier"`
	TotalLuckMultiplier     float64               `json:"total_luck_multiplier"`
	GodLuckBonus            int64                 `json:"god_luck_bonus"`
	EffectiveClickPower     int64                 `json:"effective_click_power"`
	EffectiveAutoPower      int64                 `json:"effective_auto_power"`
	Rank                    domain.RankDefinition `json:"rank"`
}

// Compute derives the full rate breakdown for the state at the given instant.
func Compute(state *domain.PlayerState, now time.Time) Breakdown {
	b := Breakdown{
		PetMultiplier:           PetMultiplier(state.Pets),
		RebirthMultiplier:       RebirthMultiplier(state.Rebirths),
		GamepassMultiplier:      GamepassMultiplier(state.GamePasses),
		EventCurrencyMultiplier: eventProduct(state.ActiveEvents, domain.EventCurrency, now),
		EventLuckMultiplier:     eventProduct(state.ActiveEvents, domain.EventLuck, now),
		Rank:                    registry.RankFor(state.TotalClicks),
	}
	b.RankMultiplier = b.Rank.Multiplier

	b.TotalMultiplier = b.PetMultiplier * b.RebirthMultiplier * b.GamepassMultiplier *
		b.EventCurrencyMultiplier * b.RankMultiplier

	// Luck feeds only the randomized reward resolver, never the click/auto rate.
	b.TotalLuckMultiplier = b.GamepassMultiplier * b.EventLuckMultiplier

	if godLuckActive(state.ActiveEvents, now) {
		b.GodLuckBonus = domain.GodLuckFlatClickBonus
	}

	// The flat bonus is additive after the floor and never applies to auto power.
	b.EffectiveClickPower = int64(math.Floor(float64(state.ClickPower)*b.TotalMultiplier)) + b.GodLuckBonus
	b.EffectiveAutoPower = int64(math.Floor(float64(state.AutoPower) * b.TotalMultiplier))

	return b
}

// PetMultiplier sums owned pet multipliers. An empty collection floors at 1.0;
// a sum of zero would zero out the player's entire output.
func PetMultiplier(pets []domain.Pet) float64 {
	if len(pets) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, p := range pets {
		sum += p.Multiplier
	}
	if sum == 0 {
		return 1.0
	}
	return sum
}

// RebirthMultiplier is 1 + 0.5 per completed rebirth.
func RebirthMultiplier(rebirths int) float64 {
	return 1 + 0.5*float64(rebirths)
}

// GamepassMultiplier is the product of every owned pass's fixed factor.
func GamepassMultiplier(owned domain.GamePasses) float64 {
	mult := 1.0
	for _, def := range registry.GamePassDefs {
		if owned.Owned(def.Type) {
			mult *= def.Factor
		}
	}
	return mult
}

// eventProduct multiplies the factors of the still-active events of one type.
// Events stack multiplicatively; none active yields 1.0.
func eventProduct(events []domain.GameEvent, typ domain.EventType, now time.Time) float64 {
	mult := 1.0
	for _, e := range events {
		if e.Type == typ && !e.Expired(now) {
			mult *= e.Multiplier
		}
	}
	return mult
}

func godLuckActive(events []domain.GameEvent, now time.Time) bool {
	for _, e := range events {
		if e.Kind == domain.EventKindGodLuck && !e.Expired(now) {
			return true
		}
	}
	return false
}

// UpgradeCost is the current purchase price: floor(baseCost * costMultiplier^count).
// Strictly increasing in count since every cost multiplier exceeds 1.
func UpgradeCost(u domain.Upgrade) int64 {
	return int64(math.Floor(float64(u.BaseCost) * math.Pow(u.CostMultiplier, float64(u.Count))))
}

// RebirthCost scales linearly with completed rebirths.
func RebirthCost(rebirths int) int64 {
	return 1_000_000 * int64(rebirths+1)
}

// RebirthGems is the gem payout for completing the next rebirth.
func RebirthGems(rebirths int) int64 {
	return 100 * int64(rebirths+1)
}
