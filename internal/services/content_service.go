package services

import (
	"context"

	"postpilot-api/internal/models"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
)

type ContentService interface {
	SavePost(ctx context.Context, title, content string, topicID, projectID, userID uuid.UUID) (*models.GeneratedContent, error)
	GetPost(ctx context.Context, id, userID uuid.UUID) (*models.GeneratedContent, error)
	ListPosts(ctx context.Context, userID uuid.UUID) ([]models.GeneratedContent, error)
	ListPostsByProject(ctx context.Context, projectID, userID uuid.UUID) ([]models.GeneratedContent, error)
}

type contentService struct {
	repo repository.ContentRepository
}

func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) SavePost(ctx context.Context, title, content string, topicID, projectID, userID uuid.UUID) (*models.GeneratedContent, error) {
	post := &models.GeneratedContent{
		Title:     title,
		Content:   content,
		TopicID:   topicID,
		ProjectID: projectID,
		UserID:    userID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *contentService) GetPost(ctx context.Context, id, userID uuid.UUID) (*models.GeneratedContent, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

func (s *contentService) ListPosts(ctx context.Context, userID uuid.UUID) ([]models.GeneratedContent, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *contentService) ListPostsByProject(ctx context.Context, projectID, userID uuid.UUID) ([]models.GeneratedContent, error) {
	return s.repo.ListByProject(ctx, projectID, userID)
}
