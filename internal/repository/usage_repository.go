package repository

import (
	"context"
	"time"

	"postpilot-api/internal/models"
	"postpilot-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, date string) (*models.APIUsage, error)
	IncrementResearch(ctx context.Context, userID uuid.UUID, date string) error
	IncrementGenerate(ctx context.Context, userID uuid.UUID, date string) error
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

// GetOrCreate returns the counter row for (userID, date), inserting a zeroed
// row if none exists. The insert uses ON CONFLICT DO NOTHING against the
// (user_id, date) unique index, so two concurrent callers resolve to the
// same single row.
func (r *usageRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, date string) (*models.APIUsage, error) {
	var usage models.APIUsage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&usage).Error
	if err == nil {
		return &usage, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.Wrap(err, "failed to load usage record")
	}

	fresh := models.APIUsage{UserID: userID, Date: date}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&fresh).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to create usage record")
	}

	// Re-read so that a concurrently inserted row wins over ours.
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&usage).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load usage record")
	}
	return &usage, nil
}

func (r *usageRepository) IncrementResearch(ctx context.Context, userID uuid.UUID, date string) error {
	return r.increment(ctx, userID, date, "research_count")
}

func (r *usageRepository) IncrementGenerate(ctx context.Context, userID uuid.UUID, date string) error {
	return r.increment(ctx, userID, date, "generate_count")
}

// increment adds one to a counter column in a single UPDATE. There is no
// ceiling check here; enforcement happens in the service's CanX calls before
// the metered action runs.
func (r *usageRepository) increment(ctx context.Context, userID uuid.UUID, date, column string) error {
	err := r.db.WithContext(ctx).
		Model(&models.APIUsage{}).
		Where("user_id = ? AND date = ?", userID, date).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column + " + 1"),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment usage counter")
	}
	return nil
}
