package services

import (
	"context"

	"postpilot-api/internal/models"
	"postpilot-api/internal/repository"
)

// UserLister exposes the account listing used by the admin dashboard.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserLister {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}
