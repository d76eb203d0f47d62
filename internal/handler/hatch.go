package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkarlsen/BloxClicker_Go/internal/hatch"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// HatchEggRequest selects the egg tier to hatch
type HatchEggRequest struct {
	Tier string `json:"tier" validate:"required"`
}

// HandleHatchEgg resolves one egg draw
// @Summary Hatch egg
// @Description Deducts the egg cost and resolves one pet draw. Only one draw can be in flight at a time.
// @Tags hatch
// @Accept json
// @Produce json
// @Param request body HatchEggRequest true "Egg tier"
// @Success 200 {object} hatch.Result
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Hatch already in progress"
// @Router /hatch/egg [post]
func HandleHatchEgg(svc hatch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req HatchEggRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := svc.HatchEgg(r.Context(), registry.EggTier(req.Tier))
		if err != nil {
			log.Warn("Hatch rejected", "tier", req.Tier, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// OpenBlockRequest selects the lucky block to open
type OpenBlockRequest struct {
	BlockID string `json:"block_id" validate:"required"`
}

// HandleOpenLuckyBlock resolves one lucky block draw
// @Summary Open lucky block
// @Description Deducts the block cost and resolves one pet draw. Locked blocks are rejected.
// @Tags hatch
// @Accept json
// @Produce json
// @Param request body OpenBlockRequest true "Block identifier"
// @Success 200 {object} hatch.Result
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Block locked"
// @Failure 409 {object} ErrorResponse "Hatch already in progress"
// @Router /hatch/block [post]
func HandleOpenLuckyBlock(svc hatch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenBlockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := svc.OpenLuckyBlock(r.Context(), req.BlockID)
		if err != nil {
			log.Warn("Lucky block rejected", "block", req.BlockID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
