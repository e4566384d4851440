package handlers

import (
	"encoding/json"
	"net/http"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/services"

	"github.com/google/uuid"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type submitFeedbackRequest struct {
	Type    models.FeedbackType `json:"type"`
	Message string              `json:"message"`
}

// Submit records user feedback. The user is optional: the route is mounted
// both inside and outside the authenticated subrouter.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if user, ok := services.UserFromContext(r.Context()); ok {
		userID = &user.ID
	}

	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.feedbackService.Submit(req.Type, req.Message, userID); err != nil {
		if err == errors.ErrInvalidInput {
			respondWithError(w, http.StatusBadRequest, "Message required")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
