package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedContent is a finished LinkedIn post produced from an approved topic.
type GeneratedContent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	TopicID   uuid.UUID `gorm:"type:uuid;index;not null" json:"topic_id"`
	ProjectID uuid.UUID `gorm:"type:uuid;index;not null" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (c *GeneratedContent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (GeneratedContent) TableName() string {
	return "generated_content"
}
