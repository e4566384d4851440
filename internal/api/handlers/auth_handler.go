package handlers

import (
	"encoding/json"
	"net/http"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/services"
)

// AuthHandler handles registration, login, and profile updates.
type AuthHandler struct {
	authService services.AuthService
	logService  services.SystemLogService
}

func NewAuthHandler(authService services.AuthService, logService services.SystemLogService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logService:  logService,
	}
}

type registrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type nicheRequest struct {
	Niche string `json:"niche"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if len(req.Password) < 6 {
		respondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if err == errors.ErrAlreadyExists {
			respondWithError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logService.Info(models.ActionAuthEvent, "User registered", models.JSON{
		"email": user.Email,
	}, &user.ID)

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"user_id": user.ID.String(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logService.Info(models.ActionAuthEvent, "User signed in", models.JSON{
		"email": req.Email,
	}, nil)

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	// A missing account is reported identically to a successful reset so
	// the endpoint cannot be used to probe for registered emails.
	if err := h.authService.ResetPassword(r.Context(), req.Email); err != nil && err != errors.ErrNotFound {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "If the account exists, a temporary password has been sent",
	})
}

func (h *AuthHandler) UpdateNiche(w http.ResponseWriter, r *http.Request) {
	user, ok := services.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req nicheRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Niche == "" {
		respondWithError(w, http.StatusBadRequest, "Niche is required")
		return
	}

	if err := h.authService.UpdateNiche(r.Context(), user.ID, req.Niche); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Niche updated"})
}
