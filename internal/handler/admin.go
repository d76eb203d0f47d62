package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/game"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
)

// TriggerEventRequest starts a timed game event
type TriggerEventRequest struct {
	Name            string  `json:"name" validate:"required,max=80"`
	Type            string  `json:"type" validate:"required,eventtype"`
	Multiplier      float64 `json:"multiplier" validate:"required,gt=0"`
	DurationSeconds int     `json:"duration_seconds" validate:"required,gt=0,max=86400"`
}

// HandleTriggerEvent starts a timed global event
// @Summary Trigger event
// @Description Starts a timed global multiplier event. Same-type events stack multiplicatively.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body TriggerEventRequest true "Event definition"
// @Success 200 {object} domain.GameEvent
// @Failure 400 {object} ErrorResponse
// @Router /admin/event [post]
func HandleTriggerEvent(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TriggerEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		event, err := svc.TriggerEvent(r.Context(), req.Name, domain.EventType(req.Type), req.Multiplier, req.DurationSeconds)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Event triggered via admin surface", "name", req.Name, "type", req.Type)
		respondJSON(w, http.StatusOK, event)
	}
}

// AddBalanceRequest credits a currency balance
type AddBalanceRequest struct {
	Currency string `json:"currency" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

// HandleAddBalance credits a balance directly
// @Summary Add balance
// @Description Credits studs, gems or tokens directly
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AddBalanceRequest true "Balance credit"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /admin/balance [post]
func HandleAddBalance(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddBalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		snapshot, err := svc.AddBalance(r.Context(), domain.CurrencyKind(req.Currency), req.Amount)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// HandleResetState wipes the save back to defaults
// @Summary Reset state
// @Description Resets the entire player state to the default save
// @Tags admin
// @Produce json
// @Success 200 {object} game.Snapshot
// @Failure 500 {object} ErrorResponse
// @Router /admin/reset [post]
func HandleResetState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := svc.ResetState(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, snapshot)
	}
}

// AnnounceRequest carries a server announcement
type AnnounceRequest struct {
	Message string `json:"message" validate:"required,max=200"`
}

// HandleAnnounce broadcasts a server announcement
// @Summary Announce
// @Description Posts a system line to chat and pushes it to connected clients
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AnnounceRequest true "Announcement"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/announce [post]
func HandleAnnounce(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnnounceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		if err := svc.Announce(r.Context(), req.Message); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "announcement sent"})
	}
}
