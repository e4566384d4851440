package services

import (
	"time"

	"postpilot-api/internal/logger"
	"postpilot-api/internal/models"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogActivity is one event inside a grouped admin view.
type LogActivity struct {
	ID        uuid.UUID       `json:"id"`
	Level     models.LogLevel `json:"level"`
	Action    string          `json:"action"`
	Message   string          `json:"message"`
	Details   models.JSON     `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserActivity groups a user's recent events. Anonymous events (no user id)
// fall into a single shared bucket.
type UserActivity struct {
	UserID     *uuid.UUID    `json:"user_id"`
	UserName   *string       `json:"user_name,omitempty"`
	UserEmail  *string       `json:"user_email,omitempty"`
	Activities []LogActivity `json:"activities"`
	FirstSeen  time.Time     `json:"first_seen"`
	LastSeen   time.Time     `json:"last_seen"`
}

// SystemLogService persists application events for the admin dashboard.
// Writes are best-effort: a storage failure is reported to the process log
// and never propagated, so logging cannot fail a user request.
type SystemLogService interface {
	Log(level models.LogLevel, action, message string, details models.JSON, userID *uuid.UUID)
	Info(action, message string, details models.JSON, userID *uuid.UUID)
	Warn(action, message string, details models.JSON, userID *uuid.UUID)
	Error(action, message string, details models.JSON, userID *uuid.UUID)
	RecentLogs(limit int) ([]repository.SystemLogEntry, error)
	GroupedLogs(limit int) ([]UserActivity, error)
	DeleteLog(id uuid.UUID) error
	ClearLogs() error
}

type systemLogService struct {
	repo repository.SystemLogRepository
}

func NewSystemLogService(repo repository.SystemLogRepository) SystemLogService {
	return &systemLogService{repo: repo}
}

func (s *systemLogService) Log(level models.LogLevel, action, message string, details models.JSON, userID *uuid.UUID) {
	entry := &models.SystemLog{
		Level:   level,
		Action:  action,
		Message: message,
		Details: details,
		UserID:  userID,
	}

	if err := s.repo.Create(entry); err != nil {
		logger.LogEvent(logrus.ErrorLevel, "failed to write system log", logrus.Fields{
			"action": action,
			"error":  err.Error(),
		})
	}

	// Mirror to the process log for operators.
	fields := logrus.Fields{"action": action}
	for k, v := range details {
		fields[k] = v
	}
	switch level {
	case models.LevelError:
		logger.LogEvent(logrus.ErrorLevel, message, fields)
	case models.LevelWarn:
		logger.LogEvent(logrus.WarnLevel, message, fields)
	default:
		logger.LogEvent(logrus.InfoLevel, message, fields)
	}
}

func (s *systemLogService) Info(action, message string, details models.JSON, userID *uuid.UUID) {
	s.Log(models.LevelInfo, action, message, details, userID)
}

func (s *systemLogService) Warn(action, message string, details models.JSON, userID *uuid.UUID) {
	s.Log(models.LevelWarn, action, message, details, userID)
}

func (s *systemLogService) Error(action, message string, details models.JSON, userID *uuid.UUID) {
	s.Log(models.LevelError, action, message, details, userID)
}

func (s *systemLogService) RecentLogs(limit int) ([]repository.SystemLogEntry, error) {
	return s.repo.Latest(limit)
}

// GroupedLogs buckets the most recent events by user, preserving the order
// in which each user first appears in the newest-first listing.
func (s *systemLogService) GroupedLogs(limit int) ([]UserActivity, error) {
	entries, err := s.repo.Latest(limit)
	if err != nil {
		return nil, err
	}

	const anonymousKey = "anonymous"
	groups := make(map[string]*UserActivity)
	var order []string

	for _, entry := range entries {
		key := anonymousKey
		if entry.UserID != nil {
			key = entry.UserID.String()
		}

		group, ok := groups[key]
		if !ok {
			group = &UserActivity{
				UserID:    entry.UserID,
				UserName:  entry.UserName,
				UserEmail: entry.UserEmail,
				FirstSeen: entry.CreatedAt,
				LastSeen:  entry.CreatedAt,
			}
			groups[key] = group
			order = append(order, key)
		}

		group.Activities = append(group.Activities, LogActivity{
			ID:        entry.ID,
			Level:     entry.Level,
			Action:    entry.Action,
			Message:   entry.Message,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
		group.LastSeen = entry.CreatedAt
	}

	result := make([]UserActivity, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	return result, nil
}

func (s *systemLogService) DeleteLog(id uuid.UUID) error {
	return s.repo.DeleteByID(id)
}

func (s *systemLogService) ClearLogs() error {
	return s.repo.DeleteAll()
}
