package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// Pet multiplier bounds; generator output is clamped into this range before it
// can reach invariant-bearing state.
const (
	PetMultiplierMin = 1.2
	PetMultiplierMax = 50.0
)

// PetData is a generated pet before it is assigned an identity.
type PetData struct {
	Name        string        `json:"name"`
	Rarity      domain.Rarity `json:"rarity"`
	Multiplier  float64       `json:"multiplier"`
	Emoji       string        `json:"emoji"`
	Description string        `json:"description"`
}

var titleCaser = cases.Title(language.English)

// GeneratePet fabricates a pet for the given egg tier under the current luck
// multiplier. Remote failures fall through to the local sampler; the caller
// always gets a valid, clamped pet.
func (c *Client) GeneratePet(ctx context.Context, tier registry.EggTier, luckMultiplier float64) (PetData, error) {
	if !c.remoteEnabled() {
		return c.samplePetLocally(tier, luckMultiplier), nil
	}

	text, err := c.generate(ctx, petPrompt(tier, luckMultiplier))
	if err != nil {
		logger.FromContext(ctx).Warn("Pet generation call failed, sampling locally", "tier", tier, "error", err)
		return c.samplePetLocally(tier, luckMultiplier), nil
	}

	var data PetData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		logger.FromContext(ctx).Warn("Pet generation returned invalid JSON, sampling locally", "error", err)
		return c.samplePetLocally(tier, luckMultiplier), nil
	}

	return sanitizePet(data), nil
}

// FallbackPet is the fixed pet used when a draw cannot be resolved at all.
func FallbackPet() PetData {
	return PetData{
		Name:        "Glitch Dog",
		Rarity:      domain.RarityCommon,
		Multiplier:  PetMultiplierMin,
		Emoji:       "🐶",
		Description: "The generator failed to load this pet, so here is a dog.",
	}
}

func petPrompt(tier registry.EggTier, luck float64) string {
	var tierNote string
	switch tier {
	case registry.EggBasic:
		tierNote = "Basic eggs give Common/Uncommon pets."
	case registry.EggGolden:
		tierNote = "Golden eggs give Rare/Epic pets."
	case registry.EggDiamond:
		tierNote = "Diamond eggs give Legendary/Mythical pets."
	case registry.EggWinter:
		tierNote = "Winter eggs give Ice, Snow, Holiday, or Frozen themed pets. High chance for Legendaries."
	}

	luckNote := ""
	if luck > 1 {
		luckNote = fmt.Sprintf("The player has %.1fx LUCK active! Dramatically increase the chance of Legendary and Mythical pets. If luck is > 20, consider prefixes like 'Mutated', 'Shiny', 'Radioactive', or 'Ghost'.", luck)
	}

	return fmt.Sprintf(`Generate a unique, creative pet for a clicker simulator game.
The egg tier is %s. %s
%s
Return a JSON object with:
- name: Creative name (e.g., "Neon Dragon", "Glitch Cat", "Frost Wolf")
- rarity: One of [Common, Uncommon, Rare, Epic, Legendary, Mythical] based on tier and luck.
- multiplier: A number between %.1f and %.1f based on rarity.
- emoji: A single emoji representing the pet.
- description: A funny or cool 1-sentence description.`, tier, tierNote, luckNote, PetMultiplierMin, PetMultiplierMax)
}

// sanitizePet coerces generator output into the documented schema: multiplier
// clamped, unknown rarity demoted to Common, name title-cased, emoji defaulted.
func sanitizePet(data PetData) PetData {
	data.Name = titleCaser.String(strings.TrimSpace(data.Name))
	if data.Name == "" {
		data.Name = "Mystery Pet"
	}

	if r := domain.Rarity(titleCaser.String(strings.TrimSpace(string(data.Rarity)))); r.IsValid() {
		data.Rarity = r
	} else {
		data.Rarity = domain.RarityCommon
	}

	if data.Multiplier < PetMultiplierMin {
		data.Multiplier = PetMultiplierMin
	}
	if data.Multiplier > PetMultiplierMax {
		data.Multiplier = PetMultiplierMax
	}

	if strings.TrimSpace(data.Emoji) == "" {
		data.Emoji = "🐾"
	}
	return data
}

// Local sampling tables, used when no remote endpoint is configured or the
// call fails. Thresholds follow the rarest-first check order; luck divides
// the rare-end thresholds so high luck collapses the distribution upward.

type rarityThreshold struct {
	threshold float64
	rarity    domain.Rarity
}

var baseRarityThresholds = map[registry.EggTier][]rarityThreshold{
	registry.EggBasic: {
		{0.01, domain.RarityRare},
		{0.25, domain.RarityUncommon},
		{1.0, domain.RarityCommon},
	},
	registry.EggGolden: {
		{0.02, domain.RarityLegendary},
		{0.30, domain.RarityEpic},
		{1.0, domain.RarityRare},
	},
	registry.EggDiamond: {
		{0.10, domain.RarityMythical},
		{1.0, domain.RarityLegendary},
	},
	registry.EggWinter: {
		{0.05, domain.RarityMythical},
		{0.40, domain.RarityLegendary},
		{1.0, domain.RarityEpic},
	},
}

var rarityMultiplierRange = map[domain.Rarity][2]float64{
	domain.RarityCommon:    {1.2, 2.0},
	domain.RarityUncommon:  {2.0, 4.0},
	domain.RarityRare:      {4.0, 8.0},
	domain.RarityEpic:      {8.0, 15.0},
	domain.RarityLegendary: {15.0, 30.0},
	domain.RarityUltraRare: {25.0, 40.0},
	domain.RarityMythical:  {30.0, 50.0},
}

var localPetNames = map[registry.EggTier][]string{
	registry.EggBasic:   {"Blocky Cat", "Stud Pup", "Noob Hamster", "Pixel Parrot"},
	registry.EggGolden:  {"Gilded Fox", "Aurum Ape", "Honey Drake", "Brass Bat"},
	registry.EggDiamond: {"Prism Wyrm", "Facet Tiger", "Crystal Golem", "Neon Dragon"},
	registry.EggWinter:  {"Frost Wolf", "Blizzard Owl", "Santa Dog", "Icicle Imp"},
}

var localPetEmojis = map[registry.EggTier]string{
	registry.EggBasic:   "🐱",
	registry.EggGolden:  "🦊",
	registry.EggDiamond: "🐉",
	registry.EggWinter:  "🐺",
}

func (c *Client) samplePetLocally(tier registry.EggTier, luck float64) PetData {
	thresholds, ok := baseRarityThresholds[tier]
	if !ok {
		thresholds = baseRarityThresholds[registry.EggBasic]
	}
	if luck < 1 {
		luck = 1
	}

	// Rolling under a threshold lands the rarer tier; luck shrinks the roll.
	roll := c.rnd() / luck
	rarity := thresholds[len(thresholds)-1].rarity
	for _, t := range thresholds {
		if roll <= t.threshold {
			rarity = t.rarity
			break
		}
	}

	bounds := rarityMultiplierRange[rarity]
	mult := bounds[0] + c.rnd()*(bounds[1]-bounds[0])

	names := localPetNames[tier]
	name := names[int(c.rnd()*float64(len(names)))%len(names)]
	if luck > 20 {
		name = "Shiny " + name
	}

	return sanitizePet(PetData{
		Name:        name,
		Rarity:      rarity,
		Multiplier:  mult,
		Emoji:       localPetEmojis[tier],
		Description: fmt.Sprintf("A %s pet pulled from a %s egg.", strings.ToLower(string(rarity)), strings.ToLower(string(tier))),
	})
}
