package models

import "time"

// AdminToken backs the admin_session cookie. Only the most recent token is
// valid; tokens older than a day are rotated out.
type AdminToken struct {
	ID        uint      `gorm:"primarykey"`
	Token     string    `gorm:"uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AdminToken) TableName() string {
	return "admin_tokens"
}
