package services

import (
	"context"

	"postpilot-api/internal/llm"
	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
)

type TopicService interface {
	ListTopics(ctx context.Context, projectID, userID uuid.UUID) ([]models.ResearchTopic, error)
	GetTopic(ctx context.Context, id, userID uuid.UUID) (*models.ResearchTopic, error)
	SaveSuggestions(ctx context.Context, projectID, userID uuid.UUID, suggestions []llm.TopicSuggestion) ([]models.ResearchTopic, error)
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status models.TopicStatus) error
	DeleteTopic(ctx context.Context, id, userID uuid.UUID) error
}

type topicService struct {
	repo repository.TopicRepository
}

func NewTopicService(repo repository.TopicRepository) TopicService {
	return &topicService{repo: repo}
}

func (s *topicService) ListTopics(ctx context.Context, projectID, userID uuid.UUID) ([]models.ResearchTopic, error) {
	return s.repo.ListByProject(ctx, projectID, userID)
}

func (s *topicService) GetTopic(ctx context.Context, id, userID uuid.UUID) (*models.ResearchTopic, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

// SaveSuggestions stores freshly researched topics as PENDING rows.
func (s *topicService) SaveSuggestions(ctx context.Context, projectID, userID uuid.UUID, suggestions []llm.TopicSuggestion) ([]models.ResearchTopic, error) {
	topics := make([]models.ResearchTopic, 0, len(suggestions))
	for _, suggestion := range suggestions {
		topics = append(topics, models.ResearchTopic{
			Topic:       suggestion.Topic,
			SourceURL:   suggestion.SourceURL,
			SourceTitle: suggestion.SourceTitle,
			Status:      models.TopicPending,
			ProjectID:   projectID,
			UserID:      userID,
		})
	}
	return s.repo.InsertBatch(ctx, topics)
}

func (s *topicService) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status models.TopicStatus) error {
	// Ownership check before the blind status update.
	if _, err := s.repo.GetByIDForUser(ctx, id, userID); err != nil {
		return err
	}

	switch status {
	case models.TopicPending, models.TopicApproved, models.TopicRejected, models.TopicGenerated:
	default:
		return errors.ErrInvalidInput
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *topicService) DeleteTopic(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteForUser(ctx, id, userID)
}
