package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

func TestDef_Lookup(t *testing.T) {
	d, ok := Def("clicks_100")
	require.True(t, ok)
	assert.Equal(t, int64(100), d.Target)
	assert.Equal(t, int64(50), d.RewardGems)

	_, ok = Def("does_not_exist")
	assert.False(t, ok)
}

func TestDefinition_Progress_CapsAtTarget(t *testing.T) {
	state := registry.DefaultState()
	state.TotalClicks = 5_000

	d, _ := Def("clicks_100")
	assert.Equal(t, int64(100), d.Progress(&state))
	assert.True(t, d.Completed(&state))
}

func TestDefinition_Progress_PetCount(t *testing.T) {
	state := registry.DefaultState()
	state.Pets = []domain.Pet{{ID: "a"}, {ID: "b"}}

	d, _ := Def("pets_5")
	assert.Equal(t, int64(2), d.Progress(&state))
	assert.False(t, d.Completed(&state))
}

func TestEvaluate_Ordering(t *testing.T) {
	state := registry.DefaultState()
	state.TotalClicks = 150 // clicks_100 complete, clicks_1000 not
	state.ClaimedAchievementIDs = []string{"rebirth_1"}
	state.Rebirths = 1

	statuses := Evaluate(&state)
	require.Len(t, statuses, len(Defs))

	// Claimable first, claimed last.
	assert.Equal(t, "clicks_100", statuses[0].ID)
	assert.True(t, statuses[0].Completed)
	assert.False(t, statuses[0].Claimed)

	last := statuses[len(statuses)-1]
	assert.Equal(t, "rebirth_1", last.ID)
	assert.True(t, last.Claimed)
}

func TestEvaluate_FreshStateNothingComplete(t *testing.T) {
	state := registry.DefaultState()
	for _, s := range Evaluate(&state) {
		assert.False(t, s.Completed, s.ID)
		assert.False(t, s.Claimed, s.ID)
	}
}
