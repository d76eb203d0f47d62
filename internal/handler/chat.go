package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkarlsen/BloxClicker_Go/internal/game"
)

// ChatLogResponse wraps the chat log
type ChatLogResponse struct {
	Messages interface{} `json:"messages"`
}

// HandleGetChat returns the chat log, topped up with simulated lines
// @Summary Get chat
// @Description Returns the chat log, generating fresh simulated chatter when available
// @Tags chat
// @Produce json
// @Success 200 {object} ChatLogResponse
// @Failure 500 {object} ErrorResponse
// @Router /chat [get]
func HandleGetChat(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.ChatMessages(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, ChatLogResponse{Messages: messages})
	}
}

// SendChatRequest carries a player chat line
type SendChatRequest struct {
	Text string `json:"text" validate:"required,max=200"`
}

// HandleSendChat posts a player chat line
// @Summary Send chat
// @Description Appends a player-authored line to the chat log
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SendChatRequest true "Chat line"
// @Success 200 {object} domain.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Router /chat [post]
func HandleSendChat(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		msg, err := svc.SendChat(r.Context(), req.Text)
		if err != nil {
			status, errMsg := mapServiceErrorToUserMessage(err)
			respondError(w, status, errMsg)
			return
		}
		respondJSON(w, http.StatusOK, msg)
	}
}
