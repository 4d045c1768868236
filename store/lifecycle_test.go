package store

import (
	"testing"

	"sahayak-be/models"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   models.IssueStatus
		upvotes   int
		downvotes int
		want      models.IssueStatus
	}{
		{"submitted below threshold", models.Submitted, 4, 0, models.Submitted},
		{"submitted at threshold", models.Submitted, 5, 0, models.PendingVerification},
		{"submitted ignores downvotes", models.Submitted, 5, 10, models.PendingVerification},
		{"pending below net threshold", models.PendingVerification, 5, 1, models.PendingVerification},
		{"pending at net threshold", models.PendingVerification, 6, 1, models.UnderReview},
		{"under_review never auto-advances", models.UnderReview, 100, 0, models.UnderReview},
		{"in_progress untouched", models.InProgress, 100, 0, models.InProgress},
		{"resolved untouched", models.Resolved, 100, 0, models.Resolved},
		{"escalated untouched", models.Escalated, 100, 0, models.Escalated},
		{"no backward on negative net", models.PendingVerification, 5, 20, models.PendingVerification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextStatus(tt.current, tt.upvotes, tt.downvotes, 5)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatusIdempotent(t *testing.T) {
	// Evaluating twice with the same aggregates must not move again.
	first := NextStatus(models.Submitted, 5, 0, 5)
	assert.Equal(t, models.PendingVerification, first)
	second := NextStatus(first, 5, 0, 5)
	assert.Equal(t, models.PendingVerification, second)
}
