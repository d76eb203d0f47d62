package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/game"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
)

// HandleGetState returns the full state with the rate breakdown
// @Summary Get game state
// @Description Returns the player state with all derived multipliers and costs
// @Tags game
// @Produce json
// @Success 200 {object} game.Snapshot
// @Failure 500 {object} ErrorResponse
// @Router /state [get]
func HandleGetState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := svc.Snapshot(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleClick processes one manual click
// @Summary Click
// @Description Applies one click at the current effective rate
// @Tags game
// @Produce json
// @Success 200 {object} game.ClickResult
// @Failure 500 {object} ErrorResponse
// @Router /click [post]
func HandleClick(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Click(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// BuyUpgradeRequest selects the upgrade to purchase
type BuyUpgradeRequest struct {
	UpgradeID string `json:"upgrade_id" validate:"required"`
}

// HandleBuyUpgrade purchases one level of an upgrade
// @Summary Buy upgrade
// @Description Purchases one level of the given upgrade at its current cost
// @Tags game
// @Accept json
// @Produce json
// @Param request body BuyUpgradeRequest true "Upgrade selection"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /upgrade [post]
func HandleBuyUpgrade(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyUpgradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.BuyUpgrade(r.Context(), req.UpgradeID)
		if err != nil {
			log.Warn("Upgrade purchase rejected", "upgrade", req.UpgradeID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleRebirth performs a rebirth
// @Summary Rebirth
// @Description Resets the run in exchange for gems and a permanent multiplier
// @Tags game
// @Produce json
// @Success 200 {object} game.RebirthResult
// @Failure 400 {object} ErrorResponse
// @Router /rebirth [post]
func HandleRebirth(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Rebirth(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// BuyGamepassRequest selects the gamepass to purchase
type BuyGamepassRequest struct {
	Pass string `json:"pass" validate:"required"`
}

// HandleBuyGamepass purchases a permanent gamepass
// @Summary Buy gamepass
// @Description Purchases a permanent pass with gems
// @Tags game
// @Accept json
// @Produce json
// @Param request body BuyGamepassRequest true "Pass selection"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already owned"
// @Router /gamepass [post]
func HandleBuyGamepass(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyGamepassRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.BuyGamepass(r.Context(), domain.PassType(req.Pass))
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// IslandRequest selects an island
type IslandRequest struct {
	IslandID string `json:"island_id" validate:"required"`
}

// HandleBuyIsland purchases an island
// @Summary Buy island
// @Description Purchases an island with studs and travels there
// @Tags islands
// @Accept json
// @Produce json
// @Param request body IslandRequest true "Island selection"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /island/buy [post]
func HandleBuyIsland(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IslandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.BuyIsland(r.Context(), req.IslandID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleSelectIsland travels to an owned island
// @Summary Select island
// @Description Travels to an already-owned island
// @Tags islands
// @Accept json
// @Produce json
// @Param request body IslandRequest true "Island selection"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /island/select [post]
func HandleSelectIsland(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IslandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.SelectIsland(r.Context(), req.IslandID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// DefeatBossRequest identifies the defeated boss
type DefeatBossRequest struct {
	BossID int `json:"boss_id" validate:"required,gt=0"`
}

// HandleDefeatBoss credits a boss defeat
// @Summary Defeat boss
// @Description Credits the token reward for a defeated boss
// @Tags bosses
// @Accept json
// @Produce json
// @Param request body DefeatBossRequest true "Boss identifier"
// @Success 200 {object} game.BossResult
// @Failure 400 {object} ErrorResponse
// @Router /boss/defeat [post]
func HandleDefeatBoss(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DefeatBossRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := svc.DefeatBoss(r.Context(), req.BossID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// BuyGemPackRequest selects a token-shop gem pack
type BuyGemPackRequest struct {
	PackID string `json:"pack_id" validate:"required"`
}

// HandleBuyGemPack converts tokens to gems
// @Summary Buy gem pack
// @Description Converts tokens to gems through the token shop
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyGemPackRequest true "Pack selection"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /shop/gempack [post]
func HandleBuyGemPack(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyGemPackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.BuyGemPack(r.Context(), req.PackID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// BuyNameTagRequest selects a chat name tag
type BuyNameTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

// HandleBuyNameTag purchases a chat name tag
// @Summary Buy name tag
// @Description Purchases a chat name tag with studs
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyNameTagRequest true "Tag selection"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /shop/nametag [post]
func HandleBuyNameTag(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyNameTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.BuyNameTag(r.Context(), req.Tag)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// ClaimAchievementRequest identifies the achievement to claim
type ClaimAchievementRequest struct {
	AchievementID string `json:"achievement_id" validate:"required"`
}

// HandleClaimAchievement claims a completed achievement
// @Summary Claim achievement
// @Description Pays out a completed, unclaimed achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body ClaimAchievementRequest true "Achievement identifier"
// @Success 200 {object} game.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already claimed"
// @Router /achievement/claim [post]
func HandleClaimAchievement(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimAchievementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := svc.ClaimAchievement(r.Context(), req.AchievementID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
