package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-wellness/internal/app"
	"github.com/MKhiriev/go-wellness/internal/utils"
	"github.com/MKhiriev/go-wellness/models"
)

func (h *Handler) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ChatMessageRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.services.ChatService.SendMessage(r.Context(), user.ID, req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}

func (h *Handler) chatContext(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLimit, raw))
			return
		}
	}

	messages, err := h.services.ChatService.Context(r.Context(), user.ID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	utils.WriteJSON(w, models.ChatContextResponse{
		UserID:       user.ID,
		MessageCount: len(messages),
		Messages:     messages,
	}, http.StatusOK)
}

func (h *Handler) clearChatContext(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ChatService.ClearContext(r.Context(), user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgChatContextCleared}, http.StatusOK)
}

func (h *Handler) suggestedQuestions(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	questions, err := h.services.ChatService.SuggestedQuestions(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}
