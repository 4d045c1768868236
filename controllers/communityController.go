package controllers

import (
	"net/http"
	"time"

	"sahayak-be/store"

	"github.com/gin-gonic/gin"
)

// CommunityController serves the volunteering feed and events.
type CommunityController struct {
	Store *store.CommunityStore
}

func NewCommunityController(s *store.CommunityStore) *CommunityController {
	return &CommunityController{Store: s}
}

// ListPosts handles GET /api/community-posts
func (cc *CommunityController) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": cc.Store.ListPosts()})
}

// CreatePost handles POST /api/community-posts
func (cc *CommunityController) CreatePost(c *gin.Context) {
	var input struct {
		UserID      string   `json:"userId" binding:"required"`
		Description string   `json:"description" binding:"required,max=2000"`
		MediaBase64 []string `json:"mediaBase64"`
		Category    string   `json:"category"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := cc.Store.CreatePost(store.CreatePostInput{
		UserID:      input.UserID,
		Description: input.Description,
		MediaBase64: input.MediaBase64,
		Category:    input.Category,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// LikePost handles POST /api/community-posts/:id/like
func (cc *CommunityController) LikePost(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	_ = c.ShouldBindJSON(&input)

	post, err := cc.Store.LikePost(c.Param("id"), input.UserID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListEvents handles GET /api/community-events
func (cc *CommunityController) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": cc.Store.UpcomingEvents(time.Now())})
}
