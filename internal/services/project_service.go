package services

import (
	"context"
	"strings"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
)

type ProjectService interface {
	ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	CreateProject(ctx context.Context, userID uuid.UUID, name string) (*models.Project, error)
	GetProject(ctx context.Context, id, userID uuid.UUID) (*models.Project, error)
	DeleteProject(ctx context.Context, id, userID uuid.UUID) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *projectService) CreateProject(ctx context.Context, userID uuid.UUID, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrInvalidInput
	}

	project := &models.Project{
		Name:   name,
		UserID: userID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id, userID uuid.UUID) (*models.Project, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

func (s *projectService) DeleteProject(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteForUser(ctx, id, userID)
}
