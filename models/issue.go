package models

import "time"

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "pothole"
	Graffiti    IssueCategory = "graffiti"
	Streetlight IssueCategory = "streetlight"
	Garbage     IssueCategory = "garbage"
	Other       IssueCategory = "other"
)

// Categories lists every category in dashboard display order.
var Categories = []IssueCategory{Pothole, Graffiti, Streetlight, Garbage, Other}

func (c IssueCategory) Valid() bool {
	switch c {
	case Pothole, Graffiti, Streetlight, Garbage, Other:
		return true
	}
	return false
}

// IssueStatus enum
type IssueStatus string

const (
	Submitted           IssueStatus = "submitted"
	PendingVerification IssueStatus = "pending_verification"
	UnderReview         IssueStatus = "under_review"
	InProgress          IssueStatus = "in_progress"
	Resolved            IssueStatus = "resolved"
	Escalated           IssueStatus = "escalated"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case Submitted, PendingVerification, UnderReview, InProgress, Resolved, Escalated:
		return true
	}
	return false
}

// GeoPoint is a raw lat/lng pair; no geospatial indexing is done on it.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Comment is immutable once appended to an issue.
type Comment struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issueId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Contribution is a community-submitted remediation record. Its upvote
// count is maintained by the store's dedup ledger, never directly.
type Contribution struct {
	ID          string    `json:"id"`
	IssueID     string    `json:"issueId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Description string    `json:"description"`
	MediaURL    string    `json:"mediaUrl"`
	Upvotes     int       `json:"upvotes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Issue represents a civic issue reported by a citizen. Upvotes and
// Downvotes always equal the signed counts of the issue's vote ledger;
// VerificationThreshold is fixed at creation.
type Issue struct {
	ID                    string         `json:"id"`
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	Category              IssueCategory  `json:"category"`
	Location              GeoPoint       `json:"location"`
	Address               string         `json:"address"`
	WardID                string         `json:"wardId"`
	PhotoURL              string         `json:"photoUrl"`
	CreatedAt             time.Time      `json:"createdAt"`
	Status                IssueStatus    `json:"status"`
	Upvotes               int            `json:"upvotes"`
	Downvotes             int            `json:"downvotes"`
	VerificationThreshold int            `json:"verificationThreshold"`
	Comments              []Comment      `json:"comments"`
	Contributions         []Contribution `json:"contributions,omitempty"`
	CreatedBy             string         `json:"createdBy,omitempty"`
}

// Clone returns a copy whose slices are detached from the original, so
// callers can hold the result outside the store lock.
func (i *Issue) Clone() *Issue {
	out := *i
	out.Comments = make([]Comment, len(i.Comments))
	copy(out.Comments, i.Comments)
	if i.Contributions != nil {
		out.Contributions = make([]Contribution, len(i.Contributions))
		copy(out.Contributions, i.Contributions)
	}
	return &out
}
