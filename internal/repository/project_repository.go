package repository

import (
	"context"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return errors.Wrap(err, "failed to create project")
	}
	return nil
}

func (r *projectRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).First(&project, "id = ? AND user_id = ?", id, userID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get project")
	}

	return &project, nil
}

func (r *projectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}
	return projects, nil
}

// DeleteForUser removes a project together with its topics and generated
// posts in one transaction.
func (r *projectRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Project{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete project")
		}
		if result.RowsAffected == 0 {
			return errors.ErrNotFound
		}
		if err := tx.Delete(&models.ResearchTopic{}, "project_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "failed to delete project topics")
		}
		if err := tx.Delete(&models.GeneratedContent{}, "project_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "failed to delete project content")
		}
		return nil
	})
}
