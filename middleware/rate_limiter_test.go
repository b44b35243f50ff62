package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	bucket := NewTokenBucket(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.Allow(), "request %d inside the burst", i)
	}
	assert.False(t, bucket.Allow(), "burst exhausted")
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := NewTokenBucket(100, 1)

	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.Allow(), "tokens refill over time")
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(nil, RateLimiterConfig{Rate: 1, Burst: 2, Window: time.Second}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("10.1.2.3"))
	assert.Equal(t, http.StatusOK, do("10.1.2.3"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.1.2.3"))

	// Another client has its own bucket
	assert.Equal(t, http.StatusOK, do("10.9.9.9"))
}
