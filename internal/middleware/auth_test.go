package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"postpilot-api/internal/models"
	"postpilot-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	user *models.User
}

func (s *stubAuthService) Register(context.Context, string, string, string) (*models.User, error) {
	return nil, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return "", nil
}

func (s *stubAuthService) VerifyToken(token string) (*models.User, error) {
	if token != "valid-token" {
		return nil, services.ErrInvalidToken
	}
	return s.user, nil
}

func (s *stubAuthService) GetUserByID(context.Context, uuid.UUID) (*models.User, error) {
	return s.user, nil
}

func (s *stubAuthService) UpdateNiche(context.Context, uuid.UUID, string) error { return nil }
func (s *stubAuthService) ResetPassword(context.Context, string) error          { return nil }

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "dev@example.com"}
	mw := AuthMiddleware(&stubAuthService{user: user})

	var seenUser *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = services.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{"valid bearer token", "Bearer valid-token", http.StatusOK},
		{"wrong token", "Bearer garbage", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "valid-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUser = nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				require.NotNil(t, seenUser)
				assert.Equal(t, user.ID, seenUser.ID)
			} else {
				assert.Nil(t, seenUser)
			}
		})
	}
}
