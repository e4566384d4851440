package services

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"postpilot-api/internal/repository"

	"gorm.io/gorm"
)

// AdminTokenService backs the admin_session cookie. A single token is valid
// at a time and rotates after 24 hours.
type AdminTokenService struct {
	repo repository.AdminTokenRepository
}

func NewAdminTokenService(repo repository.AdminTokenRepository) *AdminTokenService {
	return &AdminTokenService{repo: repo}
}

func (s *AdminTokenService) GetOrCreateAdminToken() (string, error) {
	token, err := s.repo.GetLatestToken()
	if err == gorm.ErrRecordNotFound || (err == nil && time.Since(token.CreatedAt) > 24*time.Hour) {
		newToken := generateSecureToken(32)
		if err := s.repo.CreateToken(newToken); err != nil {
			return "", err
		}
		if err := s.repo.DeleteOldTokens(); err != nil {
			log.Printf("Error deleting old tokens: %v", err)
		}
		return newToken, nil
	} else if err != nil {
		return "", err
	}
	return token.Token, nil
}

// ValidateToken reports whether the cookie value matches the current,
// unexpired admin token.
func (s *AdminTokenService) ValidateToken(value string) bool {
	if value == "" {
		return false
	}
	token, err := s.repo.GetLatestToken()
	if err != nil {
		return false
	}
	if time.Since(token.CreatedAt) > 24*time.Hour {
		return false
	}
	return token.Token == value
}

func generateSecureToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
