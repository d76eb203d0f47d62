package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
)

func TestUpgrades_FreshCopy(t *testing.T) {
	a := Upgrades()
	a[0].Count = 99

	b := Upgrades()
	assert.Equal(t, 0, b[0].Count, "Upgrades must return an independent copy")
}

func TestRankFor(t *testing.T) {
	assert.Equal(t, "Noob", RankFor(0).Name)
	assert.Equal(t, "Noob", RankFor(999).Name)
	assert.Equal(t, "Beginner", RankFor(1_000).Name)
	assert.Equal(t, "God", RankFor(1_000_000).Name)
	assert.Equal(t, "Developer", RankFor(999_999_999).Name)
}

func TestNextRank(t *testing.T) {
	next, ok := NextRank(0)
	require.True(t, ok)
	assert.Equal(t, "Beginner", next.Name)

	_, ok = NextRank(10_000_000)
	assert.False(t, ok, "no next rank at max")
}

func TestGamePassDef(t *testing.T) {
	def, ok := GamePassDef(domain.PassLuck99x)
	require.True(t, ok)
	assert.Equal(t, 99.0, def.Factor)
	assert.Equal(t, int64(1_000_000_000), def.Cost)

	_, ok = GamePassDef(domain.PassType("nope"))
	assert.False(t, ok)
}

func TestLuckyBlockDefs_BrainrotLocked(t *testing.T) {
	def, ok := LuckyBlockDef("brainrot")
	require.True(t, ok)
	assert.True(t, def.Locked)

	def, ok = LuckyBlockDef("owner")
	require.True(t, ok)
	assert.Equal(t, domain.CurrencyTokens, def.Currency)
	assert.False(t, def.Locked)
}

func TestBossDefs_Rewards(t *testing.T) {
	rewards := []int64{10, 50, 250, 1_000, 5_000}
	for i, want := range rewards {
		def, ok := BossDef(i + 1)
		require.True(t, ok, "boss %d", i+1)
		assert.Equal(t, want, def.Reward)
	}
	_, ok := BossDef(6)
	assert.False(t, ok)
}

func TestDefaultState(t *testing.T) {
	state := DefaultState()

	assert.Equal(t, int64(1), state.ClickPower)
	assert.Equal(t, int64(0), state.AutoPower)
	assert.Equal(t, "spawn", state.CurrentIslandID)
	assert.Empty(t, state.Pets)
	assert.Len(t, state.Upgrades, 5)
	assert.True(t, state.OwnsIsland("spawn"))
}
