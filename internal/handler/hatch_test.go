package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/hatch"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

type fakeHatchService struct {
	result *hatch.Result
	err    error

	lastTier  registry.EggTier
	lastBlock string
}

func (f *fakeHatchService) HatchEgg(ctx context.Context, tier registry.EggTier) (*hatch.Result, error) {
	f.lastTier = tier
	return f.result, f.err
}

func (f *fakeHatchService) OpenLuckyBlock(ctx context.Context, blockID string) (*hatch.Result, error) {
	f.lastBlock = blockID
	return f.result, f.err
}

func TestHandleHatchEgg(t *testing.T) {
	svc := &fakeHatchService{result: &hatch.Result{
		Source: "basic",
		Pet:    domain.Pet{Name: "Doge", Rarity: domain.RarityRare, Multiplier: 2.5},
	}}

	rec := postJSON(t, HandleHatchEgg(svc), HatchEggRequest{Tier: "basic"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registry.EggTier("basic"), svc.lastTier)

	var result hatch.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Doge", result.Pet.Name)
}

func TestHandleHatchEgg_Errors(t *testing.T) {
	rec := postJSON(t, HandleHatchEgg(&fakeHatchService{}), map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, HandleHatchEgg(&fakeHatchService{err: domain.ErrHatchInProgress}), HatchEggRequest{Tier: "basic"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgHatchInProgressError)

	rec = postJSON(t, HandleHatchEgg(&fakeHatchService{err: domain.ErrInsufficientFunds}), HatchEggRequest{Tier: "golden"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleOpenLuckyBlock(t *testing.T) {
	svc := &fakeHatchService{result: &hatch.Result{
		Source: "halloween",
		Pet:    domain.Pet{Name: "Pumpkin Cat", Rarity: domain.RarityLegendary, Multiplier: 12},
	}}

	rec := postJSON(t, HandleOpenLuckyBlock(svc), OpenBlockRequest{BlockID: "halloween"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "halloween", svc.lastBlock)
}

func TestHandleOpenLuckyBlock_Locked(t *testing.T) {
	rec := postJSON(t, HandleOpenLuckyBlock(&fakeHatchService{err: domain.ErrBlockLocked}), OpenBlockRequest{BlockID: "brainrot"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgBlockLockedError)
}
