package repository

import (
	"context"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(ctx context.Context, content *models.GeneratedContent) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.GeneratedContent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.GeneratedContent, error)
	ListByProject(ctx context.Context, projectID, userID uuid.UUID) ([]models.GeneratedContent, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *models.GeneratedContent) error {
	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return errors.Wrap(err, "failed to create generated content")
	}
	return nil
}

func (r *contentRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.GeneratedContent, error) {
	var content models.GeneratedContent
	result := r.db.WithContext(ctx).First(&content, "id = ? AND user_id = ?", id, userID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get generated content")
	}

	return &content, nil
}

func (r *contentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.GeneratedContent, error) {
	var posts []models.GeneratedContent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generated content")
	}
	return posts, nil
}

func (r *contentRepository) ListByProject(ctx context.Context, projectID, userID uuid.UUID) ([]models.GeneratedContent, error) {
	var posts []models.GeneratedContent
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generated content")
	}
	return posts, nil
}
