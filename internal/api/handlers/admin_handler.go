package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"postpilot-api/internal/middleware"
	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/services"

	"github.com/google/uuid"
)

const (
	adminLogLimit      = 200
	adminFeedbackLimit = 50
)

// AdminHandler serves the admin dashboard: password login, system logs
// (flat and grouped by user), the user list, and feedback management.
type AdminHandler struct {
	tokenService    *services.AdminTokenService
	logService      services.SystemLogService
	feedbackService services.FeedbackService
	userList        services.UserLister
}

func NewAdminHandler(
	tokenService *services.AdminTokenService,
	logService services.SystemLogService,
	feedbackService services.FeedbackService,
	userList services.UserLister,
) *AdminHandler {
	return &AdminHandler{
		tokenService:    tokenService,
		logService:      logService,
		feedbackService: feedbackService,
		userList:        userList,
	}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

type updateFeedbackRequest struct {
	ID     string                `json:"id"`
	Status models.FeedbackStatus `json:"status"`
}

// Login validates ADMIN_PASSWORD and sets the admin_session cookie.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	validPassword := os.Getenv("ADMIN_PASSWORD")
	if validPassword == "" {
		respondWithError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password != validPassword {
		respondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.tokenService.GetOrCreateAdminToken()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   60 * 60 * 24, // 1 day
	})

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetLogs returns the latest system logs; ?grouped=true buckets them by user.
func (h *AdminHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grouped") == "true" {
		grouped, err := h.logService.GroupedLogs(adminLogLimit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondWithJSON(w, http.StatusOK, grouped)
		return
	}

	logs, err := h.logService.RecentLogs(adminLogLimit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, logs)
}

// DeleteLogs removes one log by ?id=..., or clears all logs when no id is
// given.
func (h *AdminHandler) DeleteLogs(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		if err := h.logService.ClearLogs(); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid log ID")
		return
	}
	if err := h.logService.DeleteLog(id); err != nil {
		if err == errors.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Log not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userList.ListUsers(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedbackService.ListFeedback(adminFeedbackLimit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *AdminHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	var req updateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	if err := h.feedbackService.UpdateStatus(id, req.Status); err != nil {
		switch err {
		case errors.ErrInvalidInput:
			respondWithError(w, http.StatusBadRequest, "Invalid status")
		case errors.ErrNotFound:
			respondWithError(w, http.StatusNotFound, "Feedback not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		respondWithError(w, http.StatusBadRequest, "ID required")
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid feedback ID")
		return
	}

	if err := h.feedbackService.Delete(id); err != nil {
		if err == errors.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Feedback not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
