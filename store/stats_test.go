package store

import (
	"testing"
	"time"

	"sahayak-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil, time.Now())

	assert.Equal(t, 0, got.IssuesReportedToday)
	assert.Equal(t, 0, got.ResolvedThisMonth)
	assert.Equal(t, 24, got.AvgTimeToResolutionHours)

	// Every category bucket is present, zero-filled.
	require.Len(t, got.ByCategory, 5)
	seen := make(map[models.IssueCategory]int)
	for _, b := range got.ByCategory {
		seen[b.Category] = b.Count
	}
	for _, c := range models.Categories {
		count, ok := seen[c]
		assert.True(t, ok, "missing bucket %s", c)
		assert.Equal(t, 0, count)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	issues := []models.Issue{
		{Category: models.Pothole, CreatedAt: now.Add(-2 * time.Hour), Status: models.Submitted, Upvotes: 3},
		{Category: models.Pothole, CreatedAt: now.AddDate(0, 0, -3), Status: models.Resolved, Upvotes: 6},
		{Category: models.Garbage, CreatedAt: now.AddDate(0, 0, -20), Status: models.Resolved, Upvotes: 0},
		{Category: models.Streetlight, CreatedAt: now.AddDate(0, -2, 0), Status: models.Resolved, Upvotes: 3},
	}

	got := ComputeStats(issues, now)

	assert.Equal(t, 1, got.IssuesReportedToday)
	// Only the resolved issue created inside August counts; the July
	// and June ones fall outside the month window.
	assert.Equal(t, 1, got.ResolvedThisMonth)
	// 24 + (3+6+0+3)/4 = 27
	assert.Equal(t, 27, got.AvgTimeToResolutionHours)

	counts := make(map[models.IssueCategory]int)
	for _, b := range got.ByCategory {
		counts[b.Category] = b.Count
	}
	assert.Equal(t, 2, counts[models.Pothole])
	assert.Equal(t, 1, counts[models.Garbage])
	assert.Equal(t, 1, counts[models.Streetlight])
	assert.Equal(t, 0, counts[models.Graffiti])
	assert.Equal(t, 0, counts[models.Other])
}

func TestStoreStatsUsesLiveAggregates(t *testing.T) {
	s := NewIssueStore(5)
	issue := newTestIssue(t, s)
	_, err := s.CastVote(issue.ID, "u1", models.Upvote)
	require.NoError(t, err)

	got := s.Stats()
	assert.Equal(t, 1, got.IssuesReportedToday)
	assert.Equal(t, 25, got.AvgTimeToResolutionHours)
}
