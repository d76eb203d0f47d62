package genai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// seqRnd returns a func that yields the given values in order, repeating the
// last one once exhausted.
func seqRnd(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestGeneratePet_LocalModeWithoutEndpoint(t *testing.T) {
	client := NewClient("", "", "", seqRnd(0.5))

	pet, err := client.GeneratePet(context.Background(), registry.EggBasic, 1)
	require.NoError(t, err)

	assert.Equal(t, domain.RarityCommon, pet.Rarity)
	assert.NotEmpty(t, pet.Name)
	assert.NotEmpty(t, pet.Emoji)
	assert.GreaterOrEqual(t, pet.Multiplier, PetMultiplierMin)
	assert.LessOrEqual(t, pet.Multiplier, PetMultiplierMax)
}

func TestSamplePetLocally_LuckCollapsesDistribution(t *testing.T) {
	// A 0.05 roll on a basic egg lands Uncommon at 1x luck, but 10x luck
	// shrinks it under the 0.01 Rare threshold.
	base := NewClient("", "", "", seqRnd(0.05, 0.5, 0.0))
	pet := base.samplePetLocally(registry.EggBasic, 1)
	assert.Equal(t, domain.RarityUncommon, pet.Rarity)

	lucky := NewClient("", "", "", seqRnd(0.05, 0.5, 0.0))
	pet = lucky.samplePetLocally(registry.EggBasic, 10)
	assert.Equal(t, domain.RarityRare, pet.Rarity)
}

func TestSamplePetLocally_HighLuckAddsShinyPrefix(t *testing.T) {
	client := NewClient("", "", "", seqRnd(0.9, 0.5, 0.0))

	pet := client.samplePetLocally(registry.EggDiamond, 25)
	assert.Contains(t, pet.Name, "Shiny ")
}

func TestSamplePetLocally_UnknownTierFallsBackToBasic(t *testing.T) {
	client := NewClient("", "", "", seqRnd(0.9, 0.5, 0.0))

	pet := client.samplePetLocally(registry.EggTier("Obsidian"), 1)
	assert.Equal(t, domain.RarityCommon, pet.Rarity)
}

func TestSanitizePet(t *testing.T) {
	tests := []struct {
		name string
		in   PetData
		want PetData
	}{
		{
			name: "clamps multiplier and title-cases name",
			in:   PetData{Name: "neon dragon", Rarity: "Legendary", Multiplier: 9000, Emoji: "🐉"},
			want: PetData{Name: "Neon Dragon", Rarity: domain.RarityLegendary, Multiplier: PetMultiplierMax, Emoji: "🐉"},
		},
		{
			name: "raises multiplier below floor",
			in:   PetData{Name: "Dust Mite", Rarity: "Common", Multiplier: 0.1, Emoji: "🐜"},
			want: PetData{Name: "Dust Mite", Rarity: domain.RarityCommon, Multiplier: PetMultiplierMin, Emoji: "🐜"},
		},
		{
			name: "demotes unknown rarity and defaults emoji",
			in:   PetData{Name: "Void Thing", Rarity: "Cosmic", Multiplier: 2},
			want: PetData{Name: "Void Thing", Rarity: domain.RarityCommon, Multiplier: 2, Emoji: "🐾"},
		},
		{
			name: "names the nameless",
			in:   PetData{Rarity: "Rare", Multiplier: 5, Emoji: "❓"},
			want: PetData{Name: "Mystery Pet", Rarity: domain.RarityRare, Multiplier: 5, Emoji: "❓"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizePet(tt.in)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Rarity, got.Rarity)
			assert.InDelta(t, tt.want.Multiplier, got.Multiplier, 0.0001)
			assert.Equal(t, tt.want.Emoji, got.Emoji)
		})
	}
}

func TestFallbackPet(t *testing.T) {
	pet := FallbackPet()
	assert.Equal(t, "Glitch Dog", pet.Name)
	assert.Equal(t, domain.RarityCommon, pet.Rarity)
	assert.Equal(t, PetMultiplierMin, pet.Multiplier)
}

func TestGenerateChatMessages_LocalFallback(t *testing.T) {
	client := NewClient("", "", "", seqRnd(0.5))

	lines := client.GenerateChatMessages(context.Background(), "quiet server")
	require.Len(t, lines, 1)
	assert.Equal(t, "System", lines[0].User)
}
