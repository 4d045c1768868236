package controllers

import (
	"errors"
	"net/http"

	"sahayak-be/models"
	"sahayak-be/store"

	"github.com/gin-gonic/gin"
)

// IssueController exposes the issue lifecycle engine over HTTP. All
// state lives in the injected store.
type IssueController struct {
	Store *store.IssueStore
}

func NewIssueController(s *store.IssueStore) *IssueController {
	return &IssueController{Store: s}
}

// writeStoreError maps store errors onto HTTP responses.
func writeStoreError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, store.ErrIssueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
	case errors.Is(err, store.ErrContributionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Contribution not found"})
	case errors.Is(err, store.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// ListIssues handles GET /api/issues
func (ic *IssueController) ListIssues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"issues": ic.Store.List()})
}

// GetIssue handles GET /api/issues/:id
func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, err := ic.Store.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// CreateIssue handles POST /api/issues
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input struct {
		Title       string           `json:"title" binding:"required,max=140"`
		Description string           `json:"description" binding:"required,max=1000"`
		Category    string           `json:"category" binding:"required"`
		Location    *models.GeoPoint `json:"location" binding:"required"`
		Address     string           `json:"address" binding:"required,max=200"`
		WardID      string           `json:"wardId" binding:"required,max=40"`
		PhotoBase64 string           `json:"photoBase64"`
		UserID      string           `json:"userId"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Store.Create(store.CreateIssueInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Address:     input.Address,
		WardID:      input.WardID,
		PhotoBase64: input.PhotoBase64,
		CreatedBy:   input.UserID,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// VoteIssue handles POST /api/issues/:id/vote
func (ic *IssueController) VoteIssue(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
		Vote   int    `json:"vote" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Store.CastVote(c.Param("id"), input.UserID, models.VoteDirection(input.Vote))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateStatus handles PUT /api/issues/:id/status, the staff override.
func (ic *IssueController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ic.Store.SetStatus(c.Param("id"), models.IssueStatus(input.Status))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// AddComment handles POST /api/issues/:id/comments
func (ic *IssueController) AddComment(c *gin.Context) {
	var input struct {
		UserID   string `json:"userId"`
		UserName string `json:"userName" binding:"required"`
		Message  string `json:"message" binding:"required,max=1000"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Store.AddComment(c.Param("id"), store.CommentInput{
		UserID:   input.UserID,
		UserName: input.UserName,
		Message:  input.Message,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// AddContribution handles POST /api/issues/:id/contributions
func (ic *IssueController) AddContribution(c *gin.Context) {
	var input struct {
		UserID      string `json:"userId" binding:"required"`
		UserName    string `json:"userName" binding:"required"`
		Description string `json:"description" binding:"required,max=1000"`
		MediaBase64 string `json:"mediaBase64"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contrib, err := ic.Store.AddContribution(c.Param("id"), store.ContributionInput{
		UserID:      input.UserID,
		UserName:    input.UserName,
		Description: input.Description,
		MediaBase64: input.MediaBase64,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contrib)
}

// VoteContribution handles POST /api/issues/:id/contributions/:cid/vote
func (ic *IssueController) VoteContribution(c *gin.Context) {
	// Body is optional; a missing userId counts as anon.
	var input struct {
		UserID string `json:"userId"`
	}
	_ = c.ShouldBindJSON(&input)

	contrib, err := ic.Store.UpvoteContribution(c.Param("id"), c.Param("cid"), input.UserID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, contrib)
}

// Stats handles GET /api/stats
func (ic *IssueController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, ic.Store.Stats())
}

// Ward is a static metadata entry for the report form.
type Ward struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Leader string `json:"leader"`
}

var wards = []Ward{
	{ID: "ward-1", Number: "1", Leader: "Amit Sharma"},
	{ID: "ward-2", Number: "2", Leader: "Priya Singh"},
	{ID: "ward-3", Number: "3", Leader: "Rohan Mehta"},
	{ID: "ward-4", Number: "4", Leader: "Neha Gupta"},
	{ID: "ward-5", Number: "5", Leader: "Suresh Iyer"},
}

// Wards handles GET /api/meta/wards
func (ic *IssueController) Wards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wards": wards})
}
