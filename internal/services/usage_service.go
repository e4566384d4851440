package services

import (
	"context"
	"time"

	"postpilot-api/internal/config"
	"postpilot-api/internal/models"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
)

// QuotaCheck is the result of a rate limit check. Allowed reflects the
// unfloored remaining count, so a counter already past its limit still
// reports allowed=false with remaining=0.
type QuotaCheck struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
}

// ActionUsage is one action type's counters for display.
type ActionUsage struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// UsageStats combines both metered actions for the dashboard.
type UsageStats struct {
	Research ActionUsage `json:"research"`
	Generate ActionUsage `json:"generate"`
}

// UsageService meters the two daily-limited AI actions per user. Checks and
// increments are deliberately separate, non-atomic operations: callers check
// before the external AI call and record one unit only after it succeeds, so
// failed calls never consume quota. An increment never enforces the ceiling.
type UsageService interface {
	GetOrCreateUsageRecord(ctx context.Context, userID uuid.UUID) (*models.APIUsage, error)
	CanResearch(ctx context.Context, userID uuid.UUID) (*QuotaCheck, error)
	CanGenerate(ctx context.Context, userID uuid.UUID) (*QuotaCheck, error)
	IncrementResearch(ctx context.Context, userID uuid.UUID) error
	IncrementGenerate(ctx context.Context, userID uuid.UUID) error
	GetUsageStats(ctx context.Context, userID uuid.UUID) (*UsageStats, error)
}

type usageService struct {
	repo   repository.UsageRepository
	limits config.UsageLimits
	now    func() time.Time
}

func NewUsageService(repo repository.UsageRepository, limits config.UsageLimits) UsageService {
	return &usageService{
		repo:   repo,
		limits: limits,
		now:    time.Now,
	}
}

// todayKey computes the shared day boundary: the UTC calendar date. All
// users reset at the same instant.
func (s *usageService) todayKey() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *usageService) GetOrCreateUsageRecord(ctx context.Context, userID uuid.UUID) (*models.APIUsage, error) {
	return s.repo.GetOrCreate(ctx, userID, s.todayKey())
}

func (s *usageService) CanResearch(ctx context.Context, userID uuid.UUID) (*QuotaCheck, error) {
	usage, err := s.GetOrCreateUsageRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := s.limits.Research - usage.ResearchCount
	return &QuotaCheck{
		Allowed:   remaining > 0,
		Remaining: max(0, remaining),
		Limit:     s.limits.Research,
	}, nil
}

func (s *usageService) CanGenerate(ctx context.Context, userID uuid.UUID) (*QuotaCheck, error) {
	usage, err := s.GetOrCreateUsageRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := s.limits.Generate - usage.GenerateCount
	return &QuotaCheck{
		Allowed:   remaining > 0,
		Remaining: max(0, remaining),
		Limit:     s.limits.Generate,
	}, nil
}

func (s *usageService) IncrementResearch(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.GetOrCreateUsageRecord(ctx, userID); err != nil {
		return err
	}
	return s.repo.IncrementResearch(ctx, userID, s.todayKey())
}

func (s *usageService) IncrementGenerate(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.GetOrCreateUsageRecord(ctx, userID); err != nil {
		return err
	}
	return s.repo.IncrementGenerate(ctx, userID, s.todayKey())
}

func (s *usageService) GetUsageStats(ctx context.Context, userID uuid.UUID) (*UsageStats, error) {
	usage, err := s.GetOrCreateUsageRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UsageStats{
		Research: ActionUsage{
			Used:      usage.ResearchCount,
			Limit:     s.limits.Research,
			Remaining: max(0, s.limits.Research-usage.ResearchCount),
		},
		Generate: ActionUsage{
			Used:      usage.GenerateCount,
			Limit:     s.limits.Generate,
			Remaining: max(0, s.limits.Generate-usage.GenerateCount),
		},
	}, nil
}
