package store

import "sahayak-be/models"

// NextStatus decides the status an issue should hold after its vote
// aggregates change. It is pure and forward-only: statuses past
// pending_verification are reached by staff override alone, and no
// vote pattern ever moves a status backward.
//
// The submitted gate counts raw upvotes while the
// pending_verification gate uses the net score. The asymmetry is
// load-bearing for the verification hub; see DESIGN.md before
// unifying the two rules.
func NextStatus(current models.IssueStatus, upvotes, downvotes, threshold int) models.IssueStatus {
	switch current {
	case models.Submitted:
		if upvotes >= threshold {
			return models.PendingVerification
		}
	case models.PendingVerification:
		if upvotes-downvotes >= threshold {
			return models.UnderReview
		}
	}
	return current
}
