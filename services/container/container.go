package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/services"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Resolvers and enrichment
	geocodingService services.InterfaceGeocodingService
	weatherService   services.InterfaceWeatherService

	// Data storage services
	redisService services.InterfaceRedisService

	// Business services
	envelopeService  services.InterfaceEnvelopeService
	groupService     services.InterfaceGroupService
	lifeEventService services.InterfaceLifeEventService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Probe the Redis connection; the app runs without it, degraded to the
	// in-memory rate limiter
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection test failed: %v, continuing without it", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Resolvers first, the weather service depends on geocoding
	c.geocodingService = services.NewGeocodingService(c.config)
	c.weatherService = services.NewWeatherService(c.config, c.geocodingService)

	if c.redis != nil {
		c.redisService = services.NewRedisServiceWithClient(c.redis)
	}

	// Business services
	c.envelopeService = services.NewEnvelopeService(c.db, c.config, c.weatherService)
	c.groupService = services.NewGroupService(c.db, c.config)
	c.lifeEventService = services.NewLifeEventService(c.db, c.config)
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetGeocodingService returns the geocoding service
func (c *ServiceContainer) GetGeocodingService() services.InterfaceGeocodingService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.geocodingService
}

// GetWeatherService returns the weather service
func (c *ServiceContainer) GetWeatherService() services.InterfaceWeatherService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weatherService
}

// GetRedisService returns the Redis service, nil when Redis is not configured
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetEnvelopeService returns the envelope service
func (c *ServiceContainer) GetEnvelopeService() services.InterfaceEnvelopeService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.envelopeService
}

// GetGroupService returns the group service
func (c *ServiceContainer) GetGroupService() services.InterfaceGroupService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.groupService
}

// GetLifeEventService returns the life event service
func (c *ServiceContainer) GetLifeEventService() services.InterfaceLifeEventService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lifeEventService
}
