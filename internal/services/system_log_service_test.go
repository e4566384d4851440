package services

import (
	"errors"
	"testing"
	"time"

	"postpilot-api/internal/models"
	"postpilot-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSystemLogRepo struct {
	created   []*models.SystemLog
	entries   []repository.SystemLogEntry
	createErr error
}

func (r *fakeSystemLogRepo) Create(log *models.SystemLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, log)
	return nil
}

func (r *fakeSystemLogRepo) Latest(limit int) ([]repository.SystemLogEntry, error) {
	if limit < len(r.entries) {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}

func (r *fakeSystemLogRepo) DeleteByID(id uuid.UUID) error { return nil }
func (r *fakeSystemLogRepo) DeleteAll() error              { return nil }

func logEntry(userID *uuid.UUID, name, action string, at time.Time) repository.SystemLogEntry {
	entry := repository.SystemLogEntry{
		ID:        uuid.New(),
		Level:     models.LevelInfo,
		Action:    action,
		Message:   "msg",
		UserID:    userID,
		CreatedAt: at,
	}
	if name != "" {
		entry.UserName = &name
	}
	return entry
}

func TestSystemLogService_LogPersistsEntry(t *testing.T) {
	repo := &fakeSystemLogRepo{}
	svc := NewSystemLogService(repo)
	userID := uuid.New()

	svc.Info(models.ActionUserSearch, "searched", models.JSON{"niche": "devtools"}, &userID)

	require.Len(t, repo.created, 1)
	entry := repo.created[0]
	assert.Equal(t, models.LevelInfo, entry.Level)
	assert.Equal(t, models.ActionUserSearch, entry.Action)
	assert.Equal(t, &userID, entry.UserID)
	assert.Equal(t, "devtools", entry.Details["niche"])
}

func TestSystemLogService_LogSwallowsRepoFailure(t *testing.T) {
	repo := &fakeSystemLogRepo{createErr: errors.New("db down")}
	svc := NewSystemLogService(repo)

	// Must not panic or surface the error to the caller.
	svc.Error(models.ActionSystemError, "boom", nil, nil)

	assert.Empty(t, repo.created)
}

func TestSystemLogService_GroupedLogs(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Newest first, the order the repository returns them in.
	repo := &fakeSystemLogRepo{entries: []repository.SystemLogEntry{
		logEntry(&alice, "Alice", models.ActionGeneratePost, base),
		logEntry(&bob, "Bob", models.ActionUserSearch, base.Add(-1*time.Minute)),
		logEntry(&alice, "Alice", models.ActionUserSearch, base.Add(-2*time.Minute)),
		logEntry(nil, "", models.ActionAuthEvent, base.Add(-3*time.Minute)),
	}}
	svc := NewSystemLogService(repo)

	groups, err := svc.GroupedLogs(50)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Groups keep first-appearance order from the newest-first listing.
	assert.Equal(t, &alice, groups[0].UserID)
	assert.Equal(t, &bob, groups[1].UserID)
	assert.Nil(t, groups[2].UserID, "anonymous events share one bucket")

	require.Len(t, groups[0].Activities, 2)
	assert.Equal(t, models.ActionGeneratePost, groups[0].Activities[0].Action)
	assert.Equal(t, base, groups[0].FirstSeen)
	assert.Equal(t, base.Add(-2*time.Minute), groups[0].LastSeen)

	assert.Equal(t, "Alice", *groups[0].UserName)
	require.Len(t, groups[2].Activities, 1)
}

func TestSystemLogService_GroupedLogsEmpty(t *testing.T) {
	svc := NewSystemLogService(&fakeSystemLogRepo{})

	groups, err := svc.GroupedLogs(50)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
