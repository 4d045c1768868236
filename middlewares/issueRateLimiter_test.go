package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sahayak-be/config"
	"sahayak-be/middlewares"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter(t *testing.T, limit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	config.RedisClient = client
	t.Cleanup(func() {
		config.RedisClient = nil
		client.Close()
		mr.Close()
	})

	r := gin.New()
	r.POST("/api/issues", middlewares.IssueRateLimiter(limit), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func post(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/issues", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestIssueRateLimiter(t *testing.T) {
	r := setupLimiter(t, 2)

	assert.Equal(t, http.StatusCreated, post(r).Code)
	assert.Equal(t, http.StatusCreated, post(r).Code)

	rr := post(r)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "rate limit exceeded")
	assert.Contains(t, rr.Body.String(), "retry_after")
}

func TestIssueRateLimiterWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.RedisClient = nil

	r := gin.New()
	r.POST("/api/issues", middlewares.IssueRateLimiter(1), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	// Pass-through: no Redis means no limiting.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, post(r).Code)
	}
}
