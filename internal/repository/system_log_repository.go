package repository

import (
	"time"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemLogEntry is a log row joined with the owning user's identity for
// the admin dashboard. The user fields are nil for anonymous events and
// for deleted users.
type SystemLogEntry struct {
	ID        uuid.UUID       `json:"id"`
	Level     models.LogLevel `json:"level"`
	Action    string          `json:"action"`
	Message   string          `json:"message"`
	Details   models.JSON     `gorm:"type:jsonb" json:"details,omitempty"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UserName  *string         `json:"user_name,omitempty"`
	UserEmail *string         `json:"user_email,omitempty"`
}

type SystemLogRepository interface {
	Create(log *models.SystemLog) error
	Latest(limit int) ([]SystemLogEntry, error)
	DeleteByID(id uuid.UUID) error
	DeleteAll() error
}

type systemLogRepository struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) SystemLogRepository {
	return &systemLogRepository{db: db}
}

func (r *systemLogRepository) Create(log *models.SystemLog) error {
	return r.db.Create(log).Error
}

func (r *systemLogRepository) Latest(limit int) ([]SystemLogEntry, error) {
	var entries []SystemLogEntry
	err := r.db.Table("system_logs").
		Select("system_logs.id, system_logs.level, system_logs.action, system_logs.message, system_logs.details, system_logs.user_id, system_logs.created_at, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = system_logs.user_id").
		Order("system_logs.created_at DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch system logs")
	}
	return entries, nil
}

func (r *systemLogRepository) DeleteByID(id uuid.UUID) error {
	result := r.db.Delete(&models.SystemLog{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete system log")
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *systemLogRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.SystemLog{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear system logs")
	}
	return nil
}
