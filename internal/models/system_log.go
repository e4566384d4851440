package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Log actions recorded by the system log.
const (
	ActionUserSearch     = "USER_SEARCH"
	ActionGeneratePost   = "GENERATE_POST"
	ActionSystemError    = "SYSTEM_ERROR"
	ActionAuthEvent      = "AUTH_EVENT"
	ActionFeedbackSubmit = "FEEDBACK_SUBMIT"
	ActionAPIRequest     = "API_REQUEST"
)

// SystemLog is an application event persisted for the admin dashboard.
// UserID is nullable so events survive user deletion.
type SystemLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Level     LogLevel   `gorm:"not null" json:"level"`
	Action    string     `gorm:"not null" json:"action"`
	Message   string     `gorm:"not null" json:"message"`
	Details   JSON       `gorm:"type:jsonb" json:"details,omitempty"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (l *SystemLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (SystemLog) TableName() string {
	return "system_logs"
}
