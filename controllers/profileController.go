package controllers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"sahayak-be/models"
	"sahayak-be/store"

	"github.com/gin-gonic/gin"
)

// ProfileController is the account settings stub. Profiles are created
// lazily on first access with a bcrypt-hashed default password; the
// activity summary is derived from the issue store.
type ProfileController struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
	taken    map[string]bool
	Issues   *store.IssueStore
}

func NewProfileController(issues *store.IssueStore) *ProfileController {
	return &ProfileController{
		profiles: make(map[string]*models.Profile),
		taken:    map[string]bool{"citizen": true, "admin": true, "support": true},
		Issues:   issues,
	}
}

// ensureProfile returns the profile for userID, creating it with stub
// defaults if needed. Caller must hold pc.mu.
func (pc *ProfileController) ensureProfile(userID string) *models.Profile {
	if p, ok := pc.profiles[userID]; ok {
		return p
	}
	p := &models.Profile{
		UserID:   userID,
		Username: userID,
		Email:    userID + "@example.com",
		Privacy:  models.Privacy{ShowBio: true, ShowContributions: true},
		Sessions: []models.Session{
			{
				ID:         "sess-" + genOtp(),
				Device:     "This device",
				IP:         "127.0.0.1",
				LastActive: time.Now(),
				Current:    true,
			},
		},
	}
	if err := p.HashPassword("password"); err != nil {
		log.Println("Error hashing default password:", err)
	}
	pc.profiles[userID] = p
	pc.taken[userID] = true
	return p
}

// public returns the serializable view of a profile.
func public(p *models.Profile) *models.Profile {
	out := *p
	out.Password = ""
	out.Sessions = nil
	return &out
}

// GetProfile handles GET /api/profile/:userId
func (pc *ProfileController) GetProfile(c *gin.Context) {
	pc.mu.Lock()
	p := pc.ensureProfile(c.Param("userId"))
	view := public(p)
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"profile": view})
}

// UpdateProfile handles PUT /api/profile/:userId. Username changes are
// rejected with 409 when the name is already taken.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input struct {
		Username *string         `json:"username" binding:"omitempty,min=2,max=32"`
		Email    *string         `json:"email" binding:"omitempty,email"`
		Phone    *string         `json:"phone" binding:"omitempty,min=7,max=20"`
		Aadhaar  *string         `json:"aadhaar" binding:"omitempty,aadhaar"`
		Bio      *string         `json:"bio" binding:"omitempty,max=300"`
		Privacy  *models.Privacy `json:"privacy"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	p := pc.ensureProfile(c.Param("userId"))
	if input.Username != nil && *input.Username != p.Username {
		if pc.taken[*input.Username] {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		delete(pc.taken, p.Username)
		p.Username = *input.Username
		pc.taken[p.Username] = true
	}
	if input.Email != nil {
		p.Email = *input.Email
	}
	if input.Phone != nil {
		p.Phone = *input.Phone
	}
	if input.Aadhaar != nil {
		p.Aadhaar = *input.Aadhaar
	}
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.Privacy != nil {
		p.Privacy = *input.Privacy
	}

	c.JSON(http.StatusOK, gin.H{"profile": public(p)})
}

// CheckUsername handles POST /api/profile/username-check
func (pc *ProfileController) CheckUsername(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required,min=2,max=32"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.mu.Lock()
	available := !pc.taken[input.Username]
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// ChangePassword handles POST /api/profile/:userId/change-password
func (pc *ProfileController) ChangePassword(c *gin.Context) {
	var input struct {
		Current string `json:"current" binding:"required,min=4"`
		Next    string `json:"next" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	p := pc.ensureProfile(c.Param("userId"))
	if !p.ComparePassword(input.Current) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect current password"})
		return
	}
	if err := p.HashPassword(input.Next); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadAvatar handles POST /api/profile/:userId/avatar
func (pc *ProfileController) UploadAvatar(c *gin.Context) {
	var input struct {
		Base64 string `json:"base64"`
	}
	_ = c.ShouldBindJSON(&input)

	pc.mu.Lock()
	p := pc.ensureProfile(c.Param("userId"))
	p.AvatarURL = input.Base64
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"url": input.Base64})
}

// Activity handles GET /api/profile/:userId/activity. Counts come from
// the issue store, not from profile state.
func (pc *ProfileController) Activity(c *gin.Context) {
	userID := c.Param("userId")

	pc.mu.Lock()
	pc.ensureProfile(userID)
	pc.mu.Unlock()

	reported := 0
	totalUpvotes := 0
	for _, issue := range pc.Issues.List() {
		if issue.CreatedBy == userID {
			reported++
			totalUpvotes += issue.Upvotes
		}
	}

	c.JSON(http.StatusOK, gin.H{"issuesReported": reported, "totalUpvotes": totalUpvotes})
}

// GetSessions handles GET /api/profile/:userId/sessions
func (pc *ProfileController) GetSessions(c *gin.Context) {
	pc.mu.Lock()
	p := pc.ensureProfile(c.Param("userId"))
	sessions := make([]models.Session, len(p.Sessions))
	copy(sessions, p.Sessions)
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// LogoutAllSessions handles POST /api/profile/:userId/sessions/logout-all.
// The current session stays logged in.
func (pc *ProfileController) LogoutAllSessions(c *gin.Context) {
	pc.mu.Lock()
	p := pc.ensureProfile(c.Param("userId"))
	kept := p.Sessions[:0]
	for _, s := range p.Sessions {
		if s.Current {
			kept = append(kept, s)
		}
	}
	p.Sessions = kept
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Toggle2FA handles POST /api/profile/:userId/two-factor/toggle
func (pc *ProfileController) Toggle2FA(c *gin.Context) {
	pc.mu.Lock()
	p := pc.ensureProfile(c.Param("userId"))
	p.TwoFactorEnabled = !p.TwoFactorEnabled
	enabled := p.TwoFactorEnabled
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}
