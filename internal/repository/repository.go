// Package repository persists the player state. Backends implement Store;
// callers treat saves as fire-and-forget and loads as best-effort: a missing
// or corrupt record falls back to the registry default state rather than
// failing startup.
package repository

import (
	"context"
	"encoding/json"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// Store persists whole PlayerState snapshots keyed by a fixed save key.
type Store interface {
	// Load returns the persisted state merged against registry defaults, or
	// the default state when nothing was saved yet.
	Load(ctx context.Context) (domain.PlayerState, error)
	// Save persists the full state. Never called on the mutation path's
	// critical section; failures are logged, not propagated.
	Save(ctx context.Context, state domain.PlayerState) error
	Close() error
}

// mergeWithDefaults fills fields missing from an older save with registry
// defaults, field by field. Upgrade counts from the save are re-applied onto
// the current upgrade definitions so definition changes (costs, power) take
// effect without dropping purchase progress.
func mergeWithDefaults(raw []byte) (domain.PlayerState, error) {
	state := registry.DefaultState()
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.PlayerState{}, err
	}

	merged := registry.Upgrades()
	for i := range merged {
		for _, saved := range state.Upgrades {
			if saved.ID == merged[i].ID {
				merged[i].Count = saved.Count
				break
			}
		}
	}
	state.Upgrades = merged

	if state.Pets == nil {
		state.Pets = []domain.Pet{}
	}
	if state.ActiveEvents == nil {
		state.ActiveEvents = []domain.GameEvent{}
	}
	if state.ClaimedAchievementIDs == nil {
		state.ClaimedAchievementIDs = []string{}
	}
	if state.CurrentIslandID == "" {
		state.CurrentIslandID = "spawn"
	}
	if state.ClickPower < 1 {
		state.ClickPower = 1
	}

	return state, nil
}
