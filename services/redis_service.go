package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/theblakearruda/memory-app-backend/config"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Ping(ctx context.Context) error
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisService handles Redis operations. It backs the per-IP rate limiter
// and the health probe; enrichment results are deliberately never cached.
type RedisService struct {
	Client *redis.Client
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{Client: client}
}

// NewRedisServiceWithClient wraps an existing client, used by the container
// when main has already built one
func NewRedisServiceWithClient(client *redis.Client) InterfaceRedisService {
	return &RedisService{Client: client}
}

// Ping checks connectivity
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// IncrWindow increments a fixed-window counter, setting the window expiry on
// first increment, and returns the new count
func (s *RedisService) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
