package repository

import (
	"time"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackEntry is a feedback row joined with the submitting user's identity.
type FeedbackEntry struct {
	ID        uuid.UUID             `json:"id"`
	Type      models.FeedbackType   `json:"type"`
	Message   string                `json:"message"`
	Status    models.FeedbackStatus `json:"status"`
	UserID    *uuid.UUID            `json:"user_id,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UserName  *string               `json:"user_name,omitempty"`
	UserEmail *string               `json:"user_email,omitempty"`
}

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	Latest(limit int) ([]FeedbackEntry, error)
	UpdateStatus(id uuid.UUID, status models.FeedbackStatus) error
	Delete(id uuid.UUID) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		return errors.Wrap(err, "failed to create feedback")
	}
	return nil
}

func (r *feedbackRepository) Latest(limit int) ([]FeedbackEntry, error) {
	var entries []FeedbackEntry
	err := r.db.Table("feedback").
		Select("feedback.id, feedback.type, feedback.message, feedback.status, feedback.user_id, feedback.created_at, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = feedback.user_id").
		Order("feedback.created_at DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch feedback")
	}
	return entries, nil
}

func (r *feedbackRepository) UpdateStatus(id uuid.UUID, status models.FeedbackStatus) error {
	result := r.db.Model(&models.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update feedback status")
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *feedbackRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}
