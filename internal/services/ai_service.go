package services

import (
	"context"

	"postpilot-api/internal/llm"
	"postpilot-api/internal/models"

	"github.com/google/uuid"
)

// TopicGenerator is the slice of the LLM client the AI service needs;
// narrowed to an interface so tests can substitute a fake.
type TopicGenerator interface {
	ResearchTopics(ctx context.Context, niche string) ([]llm.TopicSuggestion, error)
	GeneratePost(ctx context.Context, topic, niche string) (string, error)
}

// AIService wraps the LLM client with system-log bookkeeping: successful
// calls record USER_SEARCH / GENERATE_POST events, failures record
// SYSTEM_ERROR.
type AIService interface {
	ResearchTrendingTopics(ctx context.Context, niche string, userID *uuid.UUID) ([]llm.TopicSuggestion, error)
	GenerateLinkedInPost(ctx context.Context, topic, niche string, userID *uuid.UUID) (string, error)
}

type aiService struct {
	client TopicGenerator
	logs   SystemLogService
}

func NewAIService(client TopicGenerator, logs SystemLogService) AIService {
	return &aiService{client: client, logs: logs}
}

func (s *aiService) ResearchTrendingTopics(ctx context.Context, niche string, userID *uuid.UUID) ([]llm.TopicSuggestion, error) {
	topics, err := s.client.ResearchTopics(ctx, niche)
	if err != nil {
		s.logs.Error(models.ActionSystemError, "Topic research failed", models.JSON{
			"niche": niche,
			"error": err.Error(),
		}, userID)
		return nil, err
	}

	s.logs.Info(models.ActionUserSearch, "Researched topics for niche: "+niche, models.JSON{
		"topicCount": len(topics),
		"niche":      niche,
	}, userID)

	return topics, nil
}

func (s *aiService) GenerateLinkedInPost(ctx context.Context, topic, niche string, userID *uuid.UUID) (string, error) {
	content, err := s.client.GeneratePost(ctx, topic, niche)
	if err != nil {
		s.logs.Error(models.ActionSystemError, "Post generation failed", models.JSON{
			"topic": topic,
			"error": err.Error(),
		}, userID)
		return "", err
	}

	s.logs.Info(models.ActionGeneratePost, "Generated LinkedIn post", models.JSON{
		"topic":         topic,
		"niche":         niche,
		"contentLength": len(content),
	}, userID)

	return content, nil
}
