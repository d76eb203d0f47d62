package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func activeEvent(typ domain.EventType, mult float64) domain.GameEvent {
	return domain.GameEvent{
		ID:         "e-" + string(typ),
		Name:       "test event",
		Type:       typ,
		Kind:       domain.EventKindStandard,
		Multiplier: mult,
		EndTime:    testNow.Add(30 * time.Second),
	}
}

func TestPetMultiplier(t *testing.T) {
	// No pets floors at 1.0, never 0.
	assert.Equal(t, 1.0, PetMultiplier(nil))

	pets := []domain.Pet{{Multiplier: 2.5}, {Multiplier: 4.0}}
	assert.Equal(t, 6.5, PetMultiplier(pets))

	// A degenerate zero-sum collection also floors at 1.0.
	assert.Equal(t, 1.0, PetMultiplier([]domain.Pet{{Multiplier: 0}}))
}

func TestRebirthMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, RebirthMultiplier(0))
	assert.Equal(t, 1.5, RebirthMultiplier(1))
	assert.Equal(t, 3.0, RebirthMultiplier(4))
}

func TestGamepassMultiplier(t *testing.T) {
	var owned domain.GamePasses
	assert.Equal(t, 1.0, GamepassMultiplier(owned))

	owned.Set(domain.PassVIP)
	assert.Equal(t, 2.0, GamepassMultiplier(owned))

	owned.Set(domain.PassServerLuck)
	assert.Equal(t, 20.0, GamepassMultiplier(owned))
}

func TestUpgradeCost_Series(t *testing.T) {
	u := domain.Upgrade{ID: "click1", BaseCost: 15, CostMultiplier: 1.5}

	// floor(15 * 1.5^n): strictly increasing.
	expected := []int64{15, 22, 33, 50, 75}
	for i, want := range expected {
		u.Count = i
		assert.Equal(t, want, UpgradeCost(u), "count %d", i)
	}
}

func TestRebirthCost_Thresholds(t *testing.T) {
	assert.Equal(t, int64(1_000_000), RebirthCost(0))
	assert.Equal(t, int64(2_000_000), RebirthCost(1))

	assert.Equal(t, int64(100), RebirthGems(0))
	assert.Equal(t, int64(300), RebirthGems(2))
}

func TestCompute_EventStacking(t *testing.T) {
	state := registry.DefaultState()
	state.ActiveEvents = []domain.GameEvent{
		activeEvent(domain.EventCurrency, 2),
		activeEvent(domain.EventCurrency, 10),
	}

	b := Compute(&state, testNow)

	// Same-type events stack multiplicatively: 2 x 10 = 20.
	assert.Equal(t, 20.0, b.EventCurrencyMultiplier)
	assert.Equal(t, 1.0, b.EventLuckMultiplier)
	assert.Equal(t, int64(20), b.EffectiveClickPower)
}

func TestCompute_LuckNeverFeedsRate(t *testing.T) {
	state := registry.DefaultState()
	state.ActiveEvents = []domain.GameEvent{activeEvent(domain.EventLuck, 50)}

	b := Compute(&state, testNow)

	assert.Equal(t, 1.0, b.TotalMultiplier)
	assert.Equal(t, 50.0, b.TotalLuckMultiplier)
	assert.Equal(t, int64(1), b.EffectiveClickPower)
}

func TestCompute_GodLuckFlatBonus(t *testing.T) {
	state := registry.DefaultState()
	state.ActiveEvents = []domain.GameEvent{{
		ID:         "god",
		Name:       domain.GodLuckEventName,
		Type:       domain.EventLuck,
		Kind:       domain.EventKindGodLuck,
		Multiplier: 99,
		EndTime:    testNow.Add(time.Minute),
	}}

	b := Compute(&state, testNow)

	// The bonus is additive after the floor: 1*1 + 1,800,000.
	assert.Equal(t, domain.GodLuckFlatClickBonus, b.GodLuckBonus)
	assert.Equal(t, int64(1_800_001), b.EffectiveClickPower)

	// Never applies to auto power.
	assert.Equal(t, int64(0), b.EffectiveAutoPower)
}

func TestCompute_EventExpiry(t *testing.T) {
	state := registry.DefaultState()
	event := activeEvent(domain.EventCurrency, 5)
	event.EndTime = testNow.Add(30 * time.Second)
	state.ActiveEvents = []domain.GameEvent{event}

	// Still active one second before the window closes.
	b := Compute(&state, testNow.Add(29*time.Second))
	assert.Equal(t, 5.0, b.EventCurrencyMultiplier)

	// Gone one second after.
	b = Compute(&state, testNow.Add(31*time.Second))
	assert.Equal(t, 1.0, b.EventCurrencyMultiplier)
}

func TestCompute_FullChain(t *testing.T) {
	state := registry.DefaultState()
	state.ClickPower = 10
	state.AutoPower = 4
	state.Rebirths = 2                            // 2.0
	state.Pets = []domain.Pet{{Multiplier: 3.0}}  // 3.0
	state.GamePasses.Set(domain.PassVIP)          // 2.0
	state.TotalClicks = 1_500                     // Beginner, 1.25
	state.ActiveEvents = []domain.GameEvent{activeEvent(domain.EventCurrency, 2)}

	b := Compute(&state, testNow)

	require.Equal(t, "Beginner", b.Rank.Name)
	assert.InDelta(t, 3.0*2.0*2.0*2.0*1.25, b.TotalMultiplier, 1e-9)
	assert.Equal(t, int64(300), b.EffectiveClickPower)
	assert.Equal(t, int64(120), b.EffectiveAutoPower)
}

func BenchmarkCompute(b *testing.B) {
	state := registry.DefaultState()
	state.Pets = make([]domain.Pet, 50)
	for i := range state.Pets {
		state.Pets[i] = domain.Pet{Multiplier: 1.5}
	}
	state.ActiveEvents = []domain.GameEvent{
		activeEvent(domain.EventCurrency, 2),
		activeEvent(domain.EventLuck, 8),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compute(&state, testNow)
	}
}
