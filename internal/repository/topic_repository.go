package repository

import (
	"context"
	"time"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository interface {
	InsertBatch(ctx context.Context, topics []models.ResearchTopic) ([]models.ResearchTopic, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.ResearchTopic, error)
	ListByProject(ctx context.Context, projectID, userID uuid.UUID) ([]models.ResearchTopic, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TopicStatus) error
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) InsertBatch(ctx context.Context, topics []models.ResearchTopic) ([]models.ResearchTopic, error) {
	if len(topics) == 0 {
		return topics, nil
	}
	if err := r.db.WithContext(ctx).Create(&topics).Error; err != nil {
		return nil, errors.Wrap(err, "failed to insert topics")
	}
	return topics, nil
}

func (r *topicRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.ResearchTopic, error) {
	var topic models.ResearchTopic
	result := r.db.WithContext(ctx).First(&topic, "id = ? AND user_id = ?", id, userID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get topic")
	}

	return &topic, nil
}

func (r *topicRepository) ListByProject(ctx context.Context, projectID, userID uuid.UUID) ([]models.ResearchTopic, error) {
	var topics []models.ResearchTopic
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at desc").
		Find(&topics).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}
	return topics, nil
}

func (r *topicRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TopicStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.ResearchTopic{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update topic status")
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *topicRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ResearchTopic{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete topic")
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}
