package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"sahayak-be/controllers"
	"sahayak-be/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	controllers.RegisterValidators()

	r := gin.New()
	routes.AuthRoutes(r, controllers.NewAuthController())
	return r
}

func TestOtpLoginFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newAuthRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"mobile": "+919876543210",
		"aadhar": "123456789012",
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var login struct {
		Ok     bool   `json:"ok"`
		DevOtp string `json:"devOtp"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	assert.True(t, login.Ok)
	// GO_ENV is unset in tests, so the OTP is echoed back.
	require.Len(t, login.DevOtp, 6)

	// Wrong OTP rejected.
	rr = doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"mobile": "+919876543210",
		"otp":    "000000",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"mobile": "+919876543210",
		"otp":    login.DevOtp,
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var verify struct {
		Ok     bool   `json:"ok"`
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verify))
	assert.True(t, verify.Ok)
	assert.Equal(t, "+919876543210", verify.UserID)
	assert.NotEmpty(t, verify.Token)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "auth_token=")

	// The OTP is single-use.
	rr = doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"mobile": "+919876543210",
		"otp":    login.DevOtp,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMasterOtpInDevMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newAuthRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"mobile": "+919876543210",
		"aadhar": "123456789012",
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"mobile": "+919876543210",
		"otp":    "111111",
	}, nil)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestLoginValidation(t *testing.T) {
	r := newAuthRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"mobile": "9876543210", // missing +91 prefix
		"aadhar": "123456789012",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"mobile": "+919876543210",
		"aadhar": "1234", // not 12 digits
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignupConflict(t *testing.T) {
	r := newAuthRouter(t)

	payload := gin.H{
		"aadhar":      "123456789012",
		"voterId":     "VOT1234",
		"houseNumber": "12B",
		"mobile":      "+919876543210",
		"wardNumber":  "3",
		"wardLeader":  "Rohan Mehta",
	}

	rr := doJSON(t, r, http.MethodPost, "/api/auth/signup-user", payload, nil)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, r, http.MethodPost, "/api/auth/signup-user", payload, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	admin := gin.H{
		"aadhar":     "210987654321",
		"mobile":     "+919876500000",
		"department": "Sanitation",
	}
	rr = doJSON(t, r, http.MethodPost, "/api/auth/signup-admin", admin, nil)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	rr = doJSON(t, r, http.MethodPost, "/api/auth/signup-admin", admin, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}
