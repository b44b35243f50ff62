package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theblakearruda/memory-app-backend/internal/error/code"
	"github.com/theblakearruda/memory-app-backend/internal/error/response"
	"github.com/theblakearruda/memory-app-backend/services"
)

// Simple token bucket limiter, used when Redis is not available
type TokenBucket struct {
	rate       float64   // tokens refilled per second
	capacity   int       // bucket capacity
	tokens     float64   // current token count
	lastRefill time.Time // last refill time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.Mutex
)

func localBucket(ip string, rate float64, burst int) *TokenBucket {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	bucket, ok := ipLimiters[ip]
	if !ok {
		bucket = NewTokenBucket(rate, burst)
		ipLimiters[ip] = bucket
	}
	return bucket
}

// RateLimiterConfig configures the per-IP limiter
type RateLimiterConfig struct {
	Rate   float64       // requests allowed per second
	Burst  int           // allowed burst size
	Window time.Duration // fixed window size for the Redis counter
}

// DefaultRateLimiterConfig allows 10 req/s with a burst of 20
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:   10,
	Burst:  20,
	Window: time.Second,
}

// RateLimiter limits requests per client IP. With Redis the limit is a fixed
// window shared across instances; without it each instance falls back to its
// own in-memory token bucket.
func RateLimiter(redisService services.InterfaceRedisService, cfg RateLimiterConfig) gin.HandlerFunc {
	windowMax := int64(cfg.Rate*cfg.Window.Seconds()) + int64(cfg.Burst)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed := true
		if redisService != nil {
			key := fmt.Sprintf("ratelimit:%s:%d", ip, time.Now().UnixNano()/int64(cfg.Window))
			count, err := redisService.IncrWindow(c.Request.Context(), key, cfg.Window)
			if err == nil {
				allowed = count <= windowMax
			} else {
				// Redis down: degrade to the local bucket
				allowed = localBucket(ip, cfg.Rate, cfg.Burst).Allow()
			}
		} else {
			allowed = localBucket(ip, cfg.Rate, cfg.Burst).Allow()
		}

		if !allowed {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
