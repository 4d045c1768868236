package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"sahayak-be/models"
)

// CreatePostInput carries the fields for a new community post.
type CreatePostInput struct {
	UserID      string
	Description string
	MediaBase64 []string
	Category    string
}

// CommunityStore owns the volunteering feed and its like ledger. Likes
// follow the same one-per-user dedup rule as contribution upvotes.
type CommunityStore struct {
	mu          sync.Mutex
	posts       []*models.CommunityPost // newest first
	byID        map[string]*models.CommunityPost
	likesByPost map[string]map[string]bool
	events      []models.UpcomingEvent
}

func NewCommunityStore() *CommunityStore {
	now := time.Now()
	return &CommunityStore{
		byID:        make(map[string]*models.CommunityPost),
		likesByPost: make(map[string]map[string]bool),
		events: []models.UpcomingEvent{
			{
				ID:          "e1",
				Title:       "Park Cleanup Drive",
				Location:    "Phase 2 Central Park",
				StartsAt:    now.Add(2 * 24 * time.Hour),
				Description: "Join neighbors for a 2-hour cleanup.",
			},
			{
				ID:       "e2",
				Title:    "Streetlight Repair Campaign",
				Location: "Ward 3, Sector 9",
				StartsAt: now.Add(5 * 24 * time.Hour),
			},
			{
				ID:          "e3",
				Title:       "Lake Desilting Awareness",
				Location:    "City Lakefront",
				StartsAt:    now.Add(7 * 24 * time.Hour),
				Description: "Short awareness session and volunteer signup.",
			},
		},
	}
}

// ListPosts returns copies of the feed, newest first.
func (s *CommunityStore) ListPosts() []*models.CommunityPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.CommunityPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.Clone())
	}
	return out
}

// CreatePost validates and appends a feed entry. Media kind is
// inferred from the data URL prefix.
func (s *CommunityStore) CreatePost(input CreatePostInput) (*models.CommunityPost, error) {
	fields := make(map[string]string)
	if input.UserID == "" {
		fields["userId"] = "must not be empty"
	}
	if l := len(input.Description); l < 1 || l > 2000 {
		fields["description"] = "must be 1-2000 characters"
	}
	category := models.GalleryCategory(input.Category)
	if input.Category == "" {
		category = models.GalleryOther
	} else if !category.Valid() {
		fields["category"] = "unknown category"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	media := make([]models.PostMedia, 0, len(input.MediaBase64))
	for _, m := range input.MediaBase64 {
		kind := "image"
		if strings.HasPrefix(m, "data:video") {
			kind = "video"
		}
		media = append(media, models.PostMedia{URL: m, Kind: kind})
	}

	post := &models.CommunityPost{
		ID:          newID(),
		UserID:      input.UserID,
		Description: input.Description,
		Media:       media,
		CreatedAt:   time.Now(),
		Category:    category,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]*models.CommunityPost{post}, s.posts...)
	s.byID[post.ID] = post
	return post.Clone(), nil
}

// LikePost counts at most one like per user per post; repeats are
// no-op successes.
func (s *CommunityStore) LikePost(postID, userID string) (*models.CommunityPost, error) {
	if userID == "" {
		userID = "anon"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.byID[postID]
	if !ok {
		return nil, ErrPostNotFound
	}

	likes := s.likesByPost[postID]
	if likes == nil {
		likes = make(map[string]bool)
		s.likesByPost[postID] = likes
	}
	if !likes[userID] {
		likes[userID] = true
		post.Upvotes++
	}
	return post.Clone(), nil
}

// UpcomingEvents returns future events sorted by start time.
func (s *CommunityStore) UpcomingEvents(now time.Time) []models.UpcomingEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UpcomingEvent, 0, len(s.events))
	for _, e := range s.events {
		if !e.StartsAt.Before(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out
}
