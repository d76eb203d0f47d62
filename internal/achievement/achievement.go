// Package achievement defines the static achievement set and evaluates
// progress against player state. Claims mutate state through the game
// service; this package stays pure.
package achievement

import (
	"sort"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
)

// Definition is a static achievement with a gem reward. Progress is derived
// from state on every read and never stored.
type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	RewardGems  int64  `json:"reward_gems"`
	Target      int64  `json:"target"`

	progress func(*domain.PlayerState) int64
}

// Defs lists every achievement.
var Defs = []Definition{
	{
		ID: "clicks_100", Name: "Clicker Novice", Description: "Click 100 times",
		Icon: "👆", RewardGems: 50, Target: 100,
		progress: func(s *domain.PlayerState) int64 { return s.TotalClicks },
	},
	{
		ID: "clicks_1000", Name: "Click Machine", Description: "Click 1,000 times",
		Icon: "🔥", RewardGems: 150, Target: 1_000,
		progress: func(s *domain.PlayerState) int64 { return s.TotalClicks },
	},
	{
		ID: "clicks_10k", Name: "Finger Destroyer", Description: "Click 10,000 times",
		Icon: "💀", RewardGems: 500, Target: 10_000,
		progress: func(s *domain.PlayerState) int64 { return s.TotalClicks },
	},
	{
		ID: "pets_5", Name: "Pet Collector", Description: "Own 5 pets",
		Icon: "🐾", RewardGems: 200, Target: 5,
		progress: func(s *domain.PlayerState) int64 { return int64(len(s.Pets)) },
	},
	{
		ID: "rebirth_1", Name: "Born Again", Description: "Rebirth once",
		Icon: "✨", RewardGems: 1_000, Target: 1,
		progress: func(s *domain.PlayerState) int64 { return int64(s.Rebirths) },
	},
}

// Def looks up an achievement definition by id.
func Def(id string) (Definition, bool) {
	for _, d := range Defs {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Progress returns the current progress value for the definition.
func (d Definition) Progress(state *domain.PlayerState) int64 {
	if d.progress == nil {
		return 0
	}
	p := d.progress(state)
	if p > d.Target {
		return d.Target
	}
	return p
}

// Completed reports whether the target has been reached.
func (d Definition) Completed(state *domain.PlayerState) bool {
	return d.progress != nil && d.progress(state) >= d.Target
}

// Status is an achievement with its evaluated progress for display.
type Status struct {
	Definition
	Progress  int64 `json:"progress"`
	Completed bool  `json:"completed"`
	Claimed   bool  `json:"claimed"`
}

// Evaluate returns every achievement with progress evaluated against state,
// ordered for display: claimable first, then in-progress, claimed last.
func Evaluate(state *domain.PlayerState) []Status {
	statuses := make([]Status, 0, len(Defs))
	for _, d := range Defs {
		statuses = append(statuses, Status{
			Definition: d,
			Progress:   d.Progress(state),
			Completed:  d.Completed(state),
			Claimed:    state.HasClaimed(d.ID),
		})
	}

	rank := func(s Status) int {
		switch {
		case s.Claimed:
			return 2
		case s.Completed:
			return 0
		default:
			return 1
		}
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return rank(statuses[i]) < rank(statuses[j])
	})
	return statuses
}
