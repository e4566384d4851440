package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackType string

const (
	FeedbackBug     FeedbackType = "BUG"
	FeedbackFeature FeedbackType = "FEATURE"
	FeedbackOther   FeedbackType = "OTHER"
)

type FeedbackStatus string

const (
	FeedbackOpen       FeedbackStatus = "OPEN"
	FeedbackInProgress FeedbackStatus = "IN_PROGRESS"
	FeedbackClosed     FeedbackStatus = "CLOSED"
)

type Feedback struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type      FeedbackType   `gorm:"not null" json:"type"`
	Message   string         `gorm:"not null" json:"message"`
	Status    FeedbackStatus `gorm:"not null;default:OPEN" json:"status"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Status == "" {
		f.Status = FeedbackOpen
	}
	return nil
}

func (Feedback) TableName() string {
	return "feedback"
}
