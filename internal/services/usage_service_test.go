package services

import (
	"context"
	"testing"
	"time"

	"postpilot-api/internal/config"
	"postpilot-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsageRepo keeps counter rows in memory, keyed exactly as the database
// does: one row per (userID, date).
type fakeUsageRepo struct {
	rows map[string]*models.APIUsage
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{rows: make(map[string]*models.APIUsage)}
}

func (r *fakeUsageRepo) key(userID uuid.UUID, date string) string {
	return userID.String() + "|" + date
}

func (r *fakeUsageRepo) GetOrCreate(_ context.Context, userID uuid.UUID, date string) (*models.APIUsage, error) {
	k := r.key(userID, date)
	if row, ok := r.rows[k]; ok {
		copied := *row
		return &copied, nil
	}
	row := &models.APIUsage{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
	}
	r.rows[k] = row
	copied := *row
	return &copied, nil
}

func (r *fakeUsageRepo) IncrementResearch(_ context.Context, userID uuid.UUID, date string) error {
	r.rows[r.key(userID, date)].ResearchCount++
	return nil
}

func (r *fakeUsageRepo) IncrementGenerate(_ context.Context, userID uuid.UUID, date string) error {
	r.rows[r.key(userID, date)].GenerateCount++
	return nil
}

func newTestUsageService(repo *fakeUsageRepo, at time.Time) *usageService {
	return &usageService{
		repo:   repo,
		limits: config.DefaultUsageLimits(),
		now:    func() time.Time { return at },
	}
}

func TestUsageService_FreshUserStats(t *testing.T) {
	svc := newTestUsageService(newFakeUsageRepo(), time.Now())

	stats, err := svc.GetUsageStats(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, ActionUsage{Used: 0, Limit: 5, Remaining: 5}, stats.Research)
	assert.Equal(t, ActionUsage{Used: 0, Limit: 10, Remaining: 10}, stats.Generate)
}

func TestUsageService_ResearchQuotaExhaustion(t *testing.T) {
	repo := newFakeUsageRepo()
	svc := newTestUsageService(repo, time.Now())
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		check, err := svc.CanResearch(ctx, userID)
		require.NoError(t, err)
		assert.True(t, check.Allowed)
		assert.Equal(t, 5-i, check.Remaining)
		require.NoError(t, svc.IncrementResearch(ctx, userID))
	}

	check, err := svc.CanResearch(ctx, userID)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.Remaining)
	assert.Equal(t, 5, check.Limit)
}

func TestUsageService_IncrementDoesNotEnforceLimit(t *testing.T) {
	// Checks gate the AI call; increments record units already spent. An
	// increment past the ceiling must still land so the counter reflects
	// what actually happened.
	repo := newFakeUsageRepo()
	svc := newTestUsageService(repo, time.Now())
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, svc.IncrementResearch(ctx, userID))
	}

	usage, err := svc.GetOrCreateUsageRecord(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 7, usage.ResearchCount)

	check, err := svc.CanResearch(ctx, userID)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.Remaining, "remaining never goes negative")

	stats, err := svc.GetUsageStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Research.Used)
	assert.Equal(t, 0, stats.Research.Remaining)
}

func TestUsageService_CountersAreIndependent(t *testing.T) {
	repo := newFakeUsageRepo()
	svc := newTestUsageService(repo, time.Now())
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.IncrementResearch(ctx, userID))
	}

	research, err := svc.CanResearch(ctx, userID)
	require.NoError(t, err)
	assert.False(t, research.Allowed)

	generate, err := svc.CanGenerate(ctx, userID)
	require.NoError(t, err)
	assert.True(t, generate.Allowed)
	assert.Equal(t, 10, generate.Remaining)
}

func TestUsageService_GenerateQuota(t *testing.T) {
	repo := newFakeUsageRepo()
	svc := newTestUsageService(repo, time.Now())
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		require.NoError(t, svc.IncrementGenerate(ctx, userID))
	}

	check, err := svc.CanGenerate(ctx, userID)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 1, check.Remaining)

	require.NoError(t, svc.IncrementGenerate(ctx, userID))

	check, err = svc.CanGenerate(ctx, userID)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.Remaining)
}

func TestUsageService_QuotaResetsAtUTCMidnight(t *testing.T) {
	repo := newFakeUsageRepo()
	userID := uuid.New()
	ctx := context.Background()

	day1 := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	svc := newTestUsageService(repo, day1)
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.IncrementResearch(ctx, userID))
	}
	check, err := svc.CanResearch(ctx, userID)
	require.NoError(t, err)
	assert.False(t, check.Allowed)

	// Two minutes later it is a new UTC day and a new counter row.
	svc.now = func() time.Time { return day1.Add(2 * time.Minute) }
	check, err = svc.CanResearch(ctx, userID)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 5, check.Remaining)
	assert.Len(t, repo.rows, 2, "previous day's row is untouched")
}

func TestUsageService_DateKeyIsUTC(t *testing.T) {
	repo := newFakeUsageRepo()
	// 23:00 in UTC-5 is already the next day in UTC.
	local := time.Date(2025, 6, 1, 23, 0, 0, 0, time.FixedZone("EST", -5*3600))
	svc := newTestUsageService(repo, local)

	usage, err := svc.GetOrCreateUsageRecord(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", usage.Date)
}

func TestUsageService_GetOrCreateIsIdempotent(t *testing.T) {
	repo := newFakeUsageRepo()
	svc := newTestUsageService(repo, time.Now())
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.GetOrCreateUsageRecord(ctx, userID)
	require.NoError(t, err)
	second, err := svc.GetOrCreateUsageRecord(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)
}

func TestUsageService_UsersAreIsolated(t *testing.T) {
	repo := newFakeUsageRepo()
	svc := newTestUsageService(repo, time.Now())
	ctx := context.Background()

	heavy := uuid.New()
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.IncrementResearch(ctx, heavy))
	}

	check, err := svc.CanResearch(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 5, check.Remaining)
}
