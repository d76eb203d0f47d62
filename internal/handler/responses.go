package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgNotEnoughCurrencyError = "Not enough currency"
	ErrMsgUnknownUpgradeError    = "Unknown upgrade"
	ErrMsgUnknownPassError       = "Unknown gamepass"
	ErrMsgUnknownEggError        = "Unknown egg tier"
	ErrMsgUnknownBlockError      = "Unknown lucky block"
	ErrMsgUnknownIslandError     = "Unknown island"
	ErrMsgUnknownBossError       = "Unknown boss"
	ErrMsgUnknownAchieveError    = "Unknown achievement"
	ErrMsgUnknownGemPackError    = "Unknown gem pack"
	ErrMsgUnknownTagError        = "Unknown name tag"

	ErrMsgAlreadyOwnedError   = "You already own that"
	ErrMsgAlreadyClaimedError = "Achievement already claimed"
	ErrMsgNotCompleteError    = "Achievement not complete yet"

	ErrMsgHatchInProgressError = "A hatch is already in progress"
	ErrMsgBlockLockedError     = "That lucky block is locked"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCurrencyError
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusBadRequest, ErrMsgUnknownUpgradeError
	case errors.Is(err, domain.ErrUnknownPass):
		return http.StatusBadRequest, ErrMsgUnknownPassError
	case errors.Is(err, domain.ErrUnknownEggTier):
		return http.StatusBadRequest, ErrMsgUnknownEggError
	case errors.Is(err, domain.ErrUnknownBlock):
		return http.StatusBadRequest, ErrMsgUnknownBlockError
	case errors.Is(err, domain.ErrUnknownIsland):
		return http.StatusBadRequest, ErrMsgUnknownIslandError
	case errors.Is(err, domain.ErrUnknownBoss):
		return http.StatusBadRequest, ErrMsgUnknownBossError
	case errors.Is(err, domain.ErrUnknownAchievement):
		return http.StatusBadRequest, ErrMsgUnknownAchieveError
	case errors.Is(err, domain.ErrUnknownGemPack):
		return http.StatusBadRequest, ErrMsgUnknownGemPackError
	case errors.Is(err, domain.ErrUnknownTag):
		return http.StatusBadRequest, ErrMsgUnknownTagError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrAchievementNotComplete):
		return http.StatusBadRequest, ErrMsgNotCompleteError
	case errors.Is(err, domain.ErrHatchInProgress):
		return http.StatusConflict, ErrMsgHatchInProgressError
	case errors.Is(err, domain.ErrBlockLocked):
		return http.StatusForbidden, ErrMsgBlockLockedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
