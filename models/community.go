package models

import "time"

// GalleryCategory enum for community posts
type GalleryCategory string

const (
	ParkCleanup     GalleryCategory = "park_cleanup"
	GraffitiRemoval GalleryCategory = "graffiti_removal"
	PotholeRepair   GalleryCategory = "pothole_repair"
	GalleryOther    GalleryCategory = "other"
)

func (g GalleryCategory) Valid() bool {
	switch g {
	case ParkCleanup, GraffitiRemoval, PotholeRepair, GalleryOther:
		return true
	}
	return false
}

// PostMedia is one attachment on a community post.
type PostMedia struct {
	URL  string `json:"url"`
	Kind string `json:"kind"` // "image" or "video"
}

// CommunityPost is a feed entry in the volunteering gallery. Upvotes
// is maintained by the like ledger, one like per user.
type CommunityPost struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Description string          `json:"description"`
	Media       []PostMedia     `json:"media"`
	Upvotes     int             `json:"upvotes"`
	CreatedAt   time.Time       `json:"createdAt"`
	Category    GalleryCategory `json:"category"`
}

func (p *CommunityPost) Clone() *CommunityPost {
	out := *p
	out.Media = make([]PostMedia, len(p.Media))
	copy(out.Media, p.Media)
	return &out
}

// UpcomingEvent is an announced community drive.
type UpcomingEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	Description string    `json:"description,omitempty"`
}
