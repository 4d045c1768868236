package controllers

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"sahayak-be/config"
	"sahayak-be/models"
	authUtils "sahayak-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthController implements the OTP login stub. Nothing here is
// durable; maps reset on restart and no real SMS is sent. In dev mode
// the OTP is logged, echoed in the response, and 111111 always passes.
type AuthController struct {
	mu          sync.Mutex
	pendingOtps map[string]string // mobile -> otp
	users       map[string]models.User
	admins      map[string]models.User
}

func NewAuthController() *AuthController {
	return &AuthController{
		pendingOtps: make(map[string]string),
		users:       make(map[string]models.User),
		admins:      make(map[string]models.User),
	}
}

func genOtp() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Mobile string `json:"mobile" binding:"required,inmobile"`
		Aadhar string `json:"aadhar" binding:"required,aadhaar"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp := genOtp()
	ac.mu.Lock()
	ac.pendingOtps[input.Mobile] = otp
	ac.mu.Unlock()

	if config.DevMode() {
		log.Printf("[DEV] OTP for %s: %s", input.Mobile, otp)
		c.JSON(http.StatusOK, gin.H{"ok": true, "devOtp": otp})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// VerifyOtp handles POST /api/auth/verify-otp. On success it mints a
// JWT and sets it as the auth_token cookie.
func (ac *AuthController) VerifyOtp(c *gin.Context) {
	var input struct {
		Mobile string `json:"mobile" binding:"required,inmobile"`
		Otp    string `json:"otp" binding:"required,otp"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ac.mu.Lock()
	expected, pending := ac.pendingOtps[input.Mobile]
	valid := pending && (input.Otp == expected || (config.DevMode() && input.Otp == "111111"))
	if valid {
		delete(ac.pendingOtps, input.Mobile)
	}
	_, isAdmin := ac.admins[input.Mobile]
	ac.mu.Unlock()

	if !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		return
	}

	role := "user"
	if isAdmin {
		role = "admin"
	}

	token, err := authUtils.GenerateToken(input.Mobile, role)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{"ok": true, "userId": input.Mobile, "token": token})
}

// SignupUser handles POST /api/auth/signup-user
func (ac *AuthController) SignupUser(c *gin.Context) {
	var input struct {
		Aadhar      string `json:"aadhar" binding:"required,aadhaar"`
		VoterID     string `json:"voterId" binding:"required,min=3,max=20"`
		HouseNumber string `json:"houseNumber" binding:"required,max=20"`
		Mobile      string `json:"mobile" binding:"required,inmobile"`
		WardNumber  string `json:"wardNumber" binding:"required"`
		WardLeader  string `json:"wardLeader" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	for _, u := range ac.users {
		if u.Aadhaar == input.Aadhar || u.Mobile == input.Mobile {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
	}

	ac.users[input.Mobile] = models.User{
		ID:          input.Mobile,
		Role:        "user",
		Aadhaar:     input.Aadhar,
		Mobile:      input.Mobile,
		VoterID:     input.VoterID,
		HouseNumber: input.HouseNumber,
		WardNumber:  input.WardNumber,
		WardLeader:  input.WardLeader,
		CreatedAt:   time.Now(),
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "userId": input.Mobile})
}

// SignupAdmin handles POST /api/auth/signup-admin
func (ac *AuthController) SignupAdmin(c *gin.Context) {
	var input struct {
		Aadhar     string `json:"aadhar" binding:"required,aadhaar"`
		Mobile     string `json:"mobile" binding:"required,inmobile"`
		Department string `json:"department" binding:"required,min=2"`
		WardNumber string `json:"wardNumber"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	for _, a := range ac.admins {
		if a.Aadhaar == input.Aadhar || a.Mobile == input.Mobile {
			c.JSON(http.StatusConflict, gin.H{"error": "Admin already exists"})
			return
		}
	}

	ac.admins[input.Mobile] = models.User{
		ID:         input.Mobile,
		Role:       "admin",
		Aadhaar:    input.Aadhar,
		Mobile:     input.Mobile,
		Department: input.Department,
		WardNumber: input.WardNumber,
		CreatedAt:  time.Now(),
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "userId": input.Mobile})
}
