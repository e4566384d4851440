package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicStatus string

const (
	TopicPending   TopicStatus = "PENDING"
	TopicApproved  TopicStatus = "APPROVED"
	TopicRejected  TopicStatus = "REJECTED"
	TopicGenerated TopicStatus = "GENERATED"
)

// ResearchTopic is a single AI-suggested topic awaiting user review.
type ResearchTopic struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Topic       string      `gorm:"not null" json:"topic"`
	SourceURL   string      `json:"source_url"`
	SourceTitle string      `json:"source_title"`
	Status      TopicStatus `gorm:"not null;default:PENDING" json:"status"`
	ProjectID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"project_id"`
	UserID      uuid.UUID   `gorm:"type:uuid;index;not null" json:"user_id"`
	CreatedAt   time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (t *ResearchTopic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TopicPending
	}
	return nil
}

func (ResearchTopic) TableName() string {
	return "research_topics"
}
