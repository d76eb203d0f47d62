package game

import (
	"context"
	"fmt"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/economy"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/metrics"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// BuyUpgrade purchases one level of the given upgrade at its current cost.
func (s *service) BuyUpgrade(ctx context.Context, upgradeID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	upgrade := s.state.UpgradeByID(upgradeID)
	if upgrade == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUpgrade, upgradeID)
	}

	cost := economy.UpgradeCost(*upgrade)
	if s.state.Currency < cost {
		return nil, fmt.Errorf("%w: need %d studs", domain.ErrInsufficientFunds, cost)
	}

	s.state.Currency -= cost
	upgrade.Count++
	switch upgrade.Type {
	case domain.UpgradeClick:
		s.state.ClickPower += int64(upgrade.PowerIncrease)
	case domain.UpgradeAuto:
		s.state.AutoPower += int64(upgrade.PowerIncrease)
	}

	metrics.StudsSpent.Add(float64(cost))
	metrics.UpgradesBought.WithLabelValues(upgradeID).Inc()

	logger.FromContext(ctx).Info(LogMsgUpgradePurchased,
		"upgrade", upgradeID, "cost", cost, "count", upgrade.Count)

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// Rebirth resets the run in exchange for gems and a permanent multiplier step.
// Pets, gems, tokens, gamepasses, islands and achievements survive.
func (s *service) Rebirth(ctx context.Context) (*RebirthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cost := economy.RebirthCost(s.state.Rebirths)
	if s.state.Currency < cost {
		return nil, fmt.Errorf("%w: need %d studs", domain.ErrInsufficientFunds, cost)
	}

	gems := economy.RebirthGems(s.state.Rebirths)

	s.state.Gems += gems
	s.state.Rebirths++
	s.state.Currency = 0
	s.state.ClickPower = 1
	s.state.AutoPower = 0
	s.state.Upgrades = registry.Upgrades()
	s.state.TotalClicks = 0

	metrics.RebirthsTotal.Inc()

	logger.FromContext(ctx).Info(LogMsgRebirthCompleted,
		"rebirths", s.state.Rebirths, "gems_awarded", gems)

	s.persist(ctx, s.state.Clone())
	return &RebirthResult{
		GemsAwarded: gems,
		Rebirths:    s.state.Rebirths,
		Snapshot:    s.snapshotLocked(),
	}, nil
}

// BuyGamepass purchases a permanent pass. Passes never unset, so a repeat
// purchase is rejected rather than charged twice.
func (s *service) BuyGamepass(ctx context.Context, pass domain.PassType) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := registry.GamePassDef(pass)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPass, pass)
	}
	if s.state.GamePasses.Owned(pass) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, pass)
	}
	if s.state.Balance(def.Currency) < def.Cost {
		return nil, fmt.Errorf("%w: need %d %s", domain.ErrInsufficientFunds, def.Cost, def.Currency)
	}

	s.state.Deduct(def.Currency, def.Cost)
	s.state.GamePasses.Set(pass)

	logger.FromContext(ctx).Info(LogMsgGamepassPurchased, "pass", pass, "cost", def.Cost)

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// BuyIsland purchases an island with studs and travels there.
func (s *service) BuyIsland(ctx context.Context, islandID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := registry.IslandDef(islandID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownIsland, islandID)
	}
	if s.state.OwnsIsland(islandID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, islandID)
	}
	if s.state.Currency < def.Cost {
		return nil, fmt.Errorf("%w: need %d studs", domain.ErrInsufficientFunds, def.Cost)
	}

	s.state.Currency -= def.Cost
	s.state.OwnedIslandIDs = append(s.state.OwnedIslandIDs, islandID)
	s.state.CurrentIslandID = islandID

	metrics.StudsSpent.Add(float64(def.Cost))
	logger.FromContext(ctx).Info(LogMsgIslandPurchased, "island", islandID, "cost", def.Cost)

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// SelectIsland travels to an already-owned island.
func (s *service) SelectIsland(ctx context.Context, islandID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := registry.IslandDef(islandID); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownIsland, islandID)
	}
	if !s.state.OwnsIsland(islandID) {
		return nil, fmt.Errorf("%w: island %s not owned", domain.ErrInvalidInput, islandID)
	}

	s.state.CurrentIslandID = islandID

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// DefeatBoss credits the token reward for a defeated boss. Combat itself is
// presentation; the core only records the outcome.
func (s *service) DefeatBoss(ctx context.Context, bossID int) (*BossResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := registry.BossDef(bossID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownBoss, bossID)
	}

	s.state.Tokens += def.Reward

	logger.FromContext(ctx).Info(LogMsgBossDefeated, "boss", def.Name, "tokens", def.Reward)

	s.persist(ctx, s.state.Clone())
	return &BossResult{
		BossName:      def.Name,
		TokensAwarded: def.Reward,
		Snapshot:      s.snapshotLocked(),
	}, nil
}

// BuyGemPack converts tokens to gems through the token shop.
func (s *service) BuyGemPack(ctx context.Context, packID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := registry.GemPackDef(packID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGemPack, packID)
	}
	if s.state.Tokens < def.Cost {
		return nil, fmt.Errorf("%w: need %d tokens", domain.ErrInsufficientFunds, def.Cost)
	}

	s.state.Tokens -= def.Cost
	s.state.Gems += def.Gems

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}

// BuyNameTag purchases a chat name tag with studs.
func (s *service) BuyNameTag(ctx context.Context, tag string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := registry.NameTagDef(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTag, tag)
	}
	for _, owned := range s.state.Tags {
		if owned == tag {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, tag)
		}
	}
	if s.state.Currency < def.Cost {
		return nil, fmt.Errorf("%w: need %d studs", domain.ErrInsufficientFunds, def.Cost)
	}

	s.state.Currency -= def.Cost
	s.state.Tags = append(s.state.Tags, tag)

	metrics.StudsSpent.Add(float64(def.Cost))

	s.persist(ctx, s.state.Clone())
	return s.snapshotLocked(), nil
}
