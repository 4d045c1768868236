package store

import (
	"fmt"
	"math"
	"sync"
	"time"

	"sahayak-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultVerificationThreshold is stamped onto new issues unless the
// store was configured with another value.
const DefaultVerificationThreshold = 5

func newID() string {
	return primitive.NewObjectID().Hex()
}

// CreateIssueInput carries the caller-supplied fields for a new issue.
// Location is a pointer so a missing payload field is distinguishable
// from coordinates at the origin.
type CreateIssueInput struct {
	Title       string
	Description string
	Category    string
	Location    *models.GeoPoint
	Address     string
	WardID      string
	PhotoBase64 string
	CreatedBy   string
}

// CommentInput carries the fields for a new comment.
type CommentInput struct {
	UserID   string
	UserName string
	Message  string
}

// ContributionInput carries the fields for a new contribution.
type ContributionInput struct {
	UserID      string
	UserName    string
	Description string
	MediaBase64 string
}

// IssueStore owns every issue record, the per-issue vote ledger and
// the per-contribution upvote ledger. All mutation goes through its
// methods; the mutex serializes the ledger-update, counter-update,
// transition sequence so the aggregate counters never drift from the
// ledgers. Methods return detached copies, never internal pointers.
type IssueStore struct {
	mu                  sync.Mutex
	issues              []*models.Issue // newest first
	byID                map[string]*models.Issue
	votesByIssue        map[string]map[string]models.VoteDirection
	votesByContribution map[string]map[string]bool
	threshold           int
}

func NewIssueStore(threshold int) *IssueStore {
	if threshold <= 0 {
		threshold = DefaultVerificationThreshold
	}
	return &IssueStore{
		byID:                make(map[string]*models.Issue),
		votesByIssue:        make(map[string]map[string]models.VoteDirection),
		votesByContribution: make(map[string]map[string]bool),
		threshold:           threshold,
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Create validates the payload and registers a new issue in submitted
// status with zero votes. On validation failure nothing is stored.
func (s *IssueStore) Create(input CreateIssueInput) (*models.Issue, error) {
	fields := make(map[string]string)
	if l := len(input.Title); l < 1 || l > 140 {
		fields["title"] = "must be 1-140 characters"
	}
	if l := len(input.Description); l < 1 || l > 1000 {
		fields["description"] = "must be 1-1000 characters"
	}
	if !models.IssueCategory(input.Category).Valid() {
		fields["category"] = "unknown category"
	}
	if input.Location == nil {
		fields["location"] = "required"
	} else if !finite(input.Location.Lat) || !finite(input.Location.Lng) {
		fields["location"] = "lat and lng must be finite"
	}
	if l := len(input.Address); l < 1 || l > 200 {
		fields["address"] = "must be 1-200 characters"
	}
	if l := len(input.WardID); l < 1 || l > 40 {
		fields["wardId"] = "must be 1-40 characters"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = "anon"
	}

	issue := &models.Issue{
		ID:                    newID(),
		Title:                 input.Title,
		Description:           input.Description,
		Category:              models.IssueCategory(input.Category),
		Location:              *input.Location,
		Address:               input.Address,
		WardID:                input.WardID,
		PhotoURL:              input.PhotoBase64,
		CreatedAt:             time.Now(),
		Status:                models.Submitted,
		VerificationThreshold: s.threshold,
		Comments:              []models.Comment{},
		CreatedBy:             createdBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append([]*models.Issue{issue}, s.issues...)
	s.byID[issue.ID] = issue
	return issue.Clone(), nil
}

// Get returns a copy of one issue.
func (s *IssueStore) Get(id string) (*models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	issue, ok := s.byID[id]
	if !ok {
		return nil, ErrIssueNotFound
	}
	return issue.Clone(), nil
}

// List returns copies of every issue, newest first.
func (s *IssueStore) List() []*models.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		out = append(out, issue.Clone())
	}
	return out
}

// Len reports how many issues exist.
func (s *IssueStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.issues)
}

// CastVote records voterID's vote on an issue. At most one vote per
// voter counts: repeating the same direction is a no-op, switching
// direction moves the one vote between the counters. The lifecycle
// rules are evaluated after every ledger update.
func (s *IssueStore) CastVote(issueID, voterID string, direction models.VoteDirection) (*models.Issue, error) {
	fields := make(map[string]string)
	if voterID == "" {
		fields["userId"] = "must not be empty"
	}
	if !direction.Valid() {
		fields["vote"] = "must be 1 or -1"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.byID[issueID]
	if !ok {
		return nil, ErrIssueNotFound
	}

	ledger := s.votesByIssue[issueID]
	if ledger == nil {
		ledger = make(map[string]models.VoteDirection)
		s.votesByIssue[issueID] = ledger
	}

	prev, voted := ledger[voterID]
	if voted && prev == direction {
		// Re-clicking the same direction must not double count.
		return issue.Clone(), nil
	}
	if voted {
		if prev == models.Upvote {
			issue.Upvotes--
		} else {
			issue.Downvotes--
		}
	}
	ledger[voterID] = direction
	if direction == models.Upvote {
		issue.Upvotes++
	} else {
		issue.Downvotes++
	}

	issue.Status = NextStatus(issue.Status, issue.Upvotes, issue.Downvotes, issue.VerificationThreshold)
	return issue.Clone(), nil
}

// SetStatus is the staff override. It accepts any valid status and
// bypasses the automatic rules entirely; the engine will not regress
// an overridden status because it only ever fires from submitted and
// pending_verification.
func (s *IssueStore) SetStatus(issueID string, status models.IssueStatus) (*models.Issue, error) {
	if !status.Valid() {
		return nil, newValidationError(map[string]string{"status": "unknown status"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.byID[issueID]
	if !ok {
		return nil, ErrIssueNotFound
	}
	issue.Status = status
	return issue.Clone(), nil
}

// AddComment appends an immutable comment to an issue. Comments do not
// affect the issue's status.
func (s *IssueStore) AddComment(issueID string, input CommentInput) (*models.Comment, error) {
	fields := make(map[string]string)
	if input.UserName == "" {
		fields["userName"] = "must not be empty"
	}
	if l := len(input.Message); l < 1 || l > 1000 {
		fields["message"] = "must be 1-1000 characters"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.byID[issueID]
	if !ok {
		return nil, ErrIssueNotFound
	}

	comment := models.Comment{
		ID:        newID(),
		IssueID:   issueID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	issue.Comments = append(issue.Comments, comment)
	return &comment, nil
}

// AddContribution appends a remediation record with zero upvotes.
func (s *IssueStore) AddContribution(issueID string, input ContributionInput) (*models.Contribution, error) {
	fields := make(map[string]string)
	if input.UserID == "" {
		fields["userId"] = "must not be empty"
	}
	if input.UserName == "" {
		fields["userName"] = "must not be empty"
	}
	if l := len(input.Description); l < 1 || l > 1000 {
		fields["description"] = "must be 1-1000 characters"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.byID[issueID]
	if !ok {
		return nil, ErrIssueNotFound
	}

	contrib := models.Contribution{
		ID:          newID(),
		IssueID:     issueID,
		UserID:      input.UserID,
		UserName:    input.UserName,
		Description: input.Description,
		MediaURL:    input.MediaBase64,
		CreatedAt:   time.Now(),
	}
	issue.Contributions = append(issue.Contributions, contrib)
	return &contrib, nil
}

// UpvoteContribution counts at most one upvote per voter per
// contribution. A repeat voter gets the current record back with no
// change and no error.
func (s *IssueStore) UpvoteContribution(issueID, contributionID, voterID string) (*models.Contribution, error) {
	if voterID == "" {
		voterID = "anon"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.byID[issueID]
	if !ok {
		return nil, ErrIssueNotFound
	}

	var contrib *models.Contribution
	for i := range issue.Contributions {
		if issue.Contributions[i].ID == contributionID {
			contrib = &issue.Contributions[i]
			break
		}
	}
	if contrib == nil {
		return nil, ErrContributionNotFound
	}

	voters := s.votesByContribution[contributionID]
	if voters == nil {
		voters = make(map[string]bool)
		s.votesByContribution[contributionID] = voters
	}
	if !voters[voterID] {
		voters[voterID] = true
		contrib.Upvotes++
	}

	out := *contrib
	return &out, nil
}

// Stats folds the current issue set into the dashboard aggregates.
func (s *IssueStore) Stats() Stats {
	s.mu.Lock()
	snapshot := make([]models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		snapshot = append(snapshot, *issue)
	}
	s.mu.Unlock()
	return ComputeStats(snapshot, time.Now())
}

// Seed loads a few sample issues for the verification hub when the
// store is empty. Votes go through CastVote with synthetic voter ids
// so the counters stay consistent with the ledger.
func (s *IssueStore) Seed() int {
	if s.Len() > 0 {
		return 0
	}

	samples := []struct {
		input     CreateIssueInput
		upvotes   int
		downvotes int
	}{
		{
			input: CreateIssueInput{
				Title:       "Pothole on Linking Road",
				Description: "Pothole on Linking Road near the market. Vehicles swerving to avoid it.",
				Category:    string(models.Pothole),
				Location:    &models.GeoPoint{Lat: 19.0669, Lng: 72.8345},
				Address:     "Linking Road near market, Mumbai",
				WardID:      "ward-1",
				PhotoBase64: "/placeholder.svg",
			},
			upvotes: 3,
		},
		{
			input: CreateIssueInput{
				Title:       "Garbage overflowing",
				Description: "Garbage overflowing from the community dustbin. Needs urgent pickup.",
				Category:    string(models.Garbage),
				Location:    &models.GeoPoint{Lat: 19.0176, Lng: 72.8562},
				Address:     "Community dustbin, near park",
				WardID:      "ward-2",
				PhotoBase64: "/placeholder.svg",
			},
			upvotes:   2,
			downvotes: 1,
		},
		{
			input: CreateIssueInput{
				Title:       "Footpath encroachment",
				Description: "Illegal encroachment on footpath near the railway station blocking pedestrians.",
				Category:    string(models.Other),
				Location:    &models.GeoPoint{Lat: 19.0179, Lng: 72.8470},
				Address:     "Near railway station",
				WardID:      "ward-3",
				PhotoBase64: "/placeholder.svg",
			},
			upvotes: 1,
		},
	}

	seeded := 0
	for n, sample := range samples {
		issue, err := s.Create(sample.input)
		if err != nil {
			continue
		}
		for v := 0; v < sample.upvotes; v++ {
			s.CastVote(issue.ID, seedVoter(n, v), models.Upvote)
		}
		for v := 0; v < sample.downvotes; v++ {
			s.CastVote(issue.ID, seedVoter(n, sample.upvotes+v), models.Downvote)
		}
		seeded++
	}
	return seeded
}

func seedVoter(issue, n int) string {
	return fmt.Sprintf("seed-voter-%d-%d", issue, n)
}
