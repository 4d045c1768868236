package store

import (
	"testing"
	"time"

	"sahayak-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	s := NewCommunityStore()

	post, err := s.CreatePost(CreatePostInput{
		UserID:      "u1",
		Description: "Cleaned up the park this morning.",
		MediaBase64: []string{"data:image/png;base64,xxx", "data:video/mp4;base64,yyy"},
		Category:    string(models.ParkCleanup),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ParkCleanup, post.Category)
	require.Len(t, post.Media, 2)
	assert.Equal(t, "image", post.Media[0].Kind)
	assert.Equal(t, "video", post.Media[1].Kind)

	// Missing category defaults to other.
	post, err = s.CreatePost(CreatePostInput{UserID: "u1", Description: "More cleanup."})
	require.NoError(t, err)
	assert.Equal(t, models.GalleryOther, post.Category)

	_, err = s.CreatePost(CreatePostInput{UserID: "", Description: "", Category: "bake_sale"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "userId")
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "category")
}

func TestListPostsNewestFirst(t *testing.T) {
	s := NewCommunityStore()
	first, err := s.CreatePost(CreatePostInput{UserID: "u1", Description: "first"})
	require.NoError(t, err)
	second, err := s.CreatePost(CreatePostInput{UserID: "u1", Description: "second"})
	require.NoError(t, err)

	posts := s.ListPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestLikePostDedup(t *testing.T) {
	s := NewCommunityStore()
	post, err := s.CreatePost(CreatePostInput{UserID: "u1", Description: "Cleanup drive photos."})
	require.NoError(t, err)

	got, err := s.LikePost(post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Upvotes)

	got, err = s.LikePost(post.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Upvotes)

	// Empty user counts as anon, once.
	got, err = s.LikePost(post.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Upvotes)
	got, err = s.LikePost(post.ID, "anon")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Upvotes)

	_, err = s.LikePost("missing", "u2")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpcomingEvents(t *testing.T) {
	s := NewCommunityStore()

	events := s.UpcomingEvents(time.Now())
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].StartsAt.Before(events[i-1].StartsAt))
	}

	// Far in the future everything has passed.
	assert.Empty(t, s.UpcomingEvents(time.Now().AddDate(1, 0, 0)))
}
