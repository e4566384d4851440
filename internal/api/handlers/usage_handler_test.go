package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"postpilot-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsageStats(t *testing.T) {
	usage := &stubUsageService{stats: services.UsageStats{
		Research: services.ActionUsage{Used: 3, Limit: 5, Remaining: 2},
		Generate: services.ActionUsage{Used: 10, Limit: 10, Remaining: 0},
	}}
	h := NewUsageHandler(usage)

	req := authedRequest(t, http.MethodGet, "/api/v1/usage", nil)
	rec := httptest.NewRecorder()
	h.GetUsageStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats services.UsageStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Research.Remaining)
	assert.Equal(t, 0, stats.Generate.Remaining)
	assert.Equal(t, 10, stats.Generate.Used)
}

func TestGetUsageStats_Unauthenticated(t *testing.T) {
	h := NewUsageHandler(&stubUsageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil)
	rec := httptest.NewRecorder()
	h.GetUsageStats(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
