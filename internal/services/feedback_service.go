package services

import (
	"strings"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
)

type FeedbackService interface {
	Submit(feedbackType models.FeedbackType, message string, userID *uuid.UUID) (*models.Feedback, error)
	ListFeedback(limit int) ([]repository.FeedbackEntry, error)
	UpdateStatus(id uuid.UUID, status models.FeedbackStatus) error
	Delete(id uuid.UUID) error
}

type feedbackService struct {
	repo repository.FeedbackRepository
	logs SystemLogService
}

func NewFeedbackService(repo repository.FeedbackRepository, logs SystemLogService) FeedbackService {
	return &feedbackService{repo: repo, logs: logs}
}

func (s *feedbackService) Submit(feedbackType models.FeedbackType, message string, userID *uuid.UUID) (*models.Feedback, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.ErrInvalidInput
	}

	switch feedbackType {
	case models.FeedbackBug, models.FeedbackFeature, models.FeedbackOther:
	default:
		feedbackType = models.FeedbackOther
	}

	feedback := &models.Feedback{
		Type:    feedbackType,
		Message: message,
		Status:  models.FeedbackOpen,
		UserID:  userID,
	}
	if err := s.repo.Create(feedback); err != nil {
		return nil, err
	}

	s.logs.Info(models.ActionFeedbackSubmit, "New "+string(feedbackType)+" submitted", models.JSON{
		"type": string(feedbackType),
	}, userID)

	return feedback, nil
}

func (s *feedbackService) ListFeedback(limit int) ([]repository.FeedbackEntry, error) {
	return s.repo.Latest(limit)
}

func (s *feedbackService) UpdateStatus(id uuid.UUID, status models.FeedbackStatus) error {
	switch status {
	case models.FeedbackOpen, models.FeedbackInProgress, models.FeedbackClosed:
	default:
		return errors.ErrInvalidInput
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *feedbackService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
