// Package hatch is the randomized reward resolver for eggs and lucky blocks.
// Draws are single-flight: one resolution at a time, cost deducted up front,
// no refund on a failed draw. The generator can never corrupt state; its
// output is sanitized in genai and a total failure resolves to the fallback
// pet.
package hatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/genai"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/metrics"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
	"github.com/mkarlsen/BloxClicker_Go/internal/sse"
)

// Service defines the interface for hatch operations
type Service interface {
	HatchEgg(ctx context.Context, tier registry.EggTier) (*Result, error)
	OpenLuckyBlock(ctx context.Context, blockID string) (*Result, error)
}

// GameState is the slice of the game service the resolver needs: atomic
// spend, pet grant and the current luck factor.
type GameState interface {
	SpendForHatch(ctx context.Context, kind domain.CurrencyKind, amount int64) error
	GrantPet(ctx context.Context, pet domain.Pet) error
	LuckMultiplier(ctx context.Context) float64
}

// Generator produces pet attributes for a draw.
type Generator interface {
	GeneratePet(ctx context.Context, tier registry.EggTier, luckMultiplier float64) (genai.PetData, error)
}

// Result is a resolved draw.
type Result struct {
	Source string     `json:"source"` // egg tier or lucky block id
	Pet    domain.Pet `json:"pet"`
}

type service struct {
	game GameState
	gen  Generator
	hub  *sse.Hub

	mu   sync.Mutex
	busy bool
}

// NewService creates a new hatch service
func NewService(game GameState, gen Generator, hub *sse.Hub) Service {
	return &service{game: game, gen: gen, hub: hub}
}

// HatchEgg resolves one draw from the given egg tier.
func (s *service) HatchEgg(ctx context.Context, tier registry.EggTier) (*Result, error) {
	def, ok := registry.EggDef(tier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEggTier, tier)
	}
	return s.resolve(ctx, string(def.Tier), def.Tier, def.Currency, def.Cost)
}

// OpenLuckyBlock resolves one draw from a lucky block. Locked blocks are
// rejected before any spend.
func (s *service) OpenLuckyBlock(ctx context.Context, blockID string) (*Result, error) {
	def, ok := registry.LuckyBlockDef(blockID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBlock, blockID)
	}
	if def.Locked {
		return nil, fmt.Errorf("%w: %s", domain.ErrBlockLocked, blockID)
	}
	return s.resolve(ctx, def.ID, def.Tier, def.Currency, def.Cost)
}

// resolve runs the draw pipeline: acquire the single-flight slot, deduct,
// generate, grant. The deduction is final once made; a generator failure
// still yields a pet (the fallback), never a refund.
func (s *service) resolve(ctx context.Context, source string, tier registry.EggTier, currency domain.CurrencyKind, cost int64) (*Result, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, domain.ErrHatchInProgress
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if err := s.game.SpendForHatch(ctx, currency, cost); err != nil {
		return nil, err
	}

	luck := s.game.LuckMultiplier(ctx)

	data, err := s.gen.GeneratePet(ctx, tier, luck)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgGenerationFailed, "source", source, "error", err)
		metrics.HatchFailures.Inc()
		data = genai.FallbackPet()
	}

	pet := domain.Pet{
		ID:          uuid.New().String(),
		Name:        data.Name,
		Rarity:      data.Rarity,
		Multiplier:  data.Multiplier,
		Emoji:       data.Emoji,
		Description: data.Description,
	}
	if err := s.game.GrantPet(ctx, pet); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGrantPet, err)
	}

	metrics.HatchesTotal.WithLabelValues(string(tier)).Inc()

	logger.FromContext(ctx).Info(LogMsgHatchResolved,
		"source", source, "pet", pet.Name, "rarity", pet.Rarity, "multiplier", pet.Multiplier, "luck", luck)

	if s.hub != nil {
		s.hub.Broadcast(sse.EventTypeHatch, sse.HatchPayload{
			Source:     source,
			PetName:    pet.Name,
			Rarity:     string(pet.Rarity),
			Multiplier: pet.Multiplier,
			Emoji:      pet.Emoji,
		})
	}

	return &Result{Source: source, Pet: pet}, nil
}
