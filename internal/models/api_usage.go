package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIUsage holds the daily action counters for one user. At most one row
// exists per (user_id, date); the composite unique index is what prevents
// concurrent get-or-create calls from inserting duplicates.
type APIUsage struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_api_usage_user_date" json:"user_id"`
	Date          string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_api_usage_user_date" json:"date"`
	ResearchCount int       `gorm:"not null;default:0" json:"research_count"`
	GenerateCount int       `gorm:"not null;default:0" json:"generate_count"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (u *APIUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (APIUsage) TableName() string {
	return "api_usage"
}
