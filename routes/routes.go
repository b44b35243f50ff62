package routes

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/controllers"
	_ "github.com/theblakearruda/memory-app-backend/docs"
	"github.com/theblakearruda/memory-app-backend/middleware"
	"github.com/theblakearruda/memory-app-backend/services/container"
)

// Codespaces preview domains are allowed alongside local dev origins
var codespacesOrigin = regexp.MustCompile(`^https://.*\.app\.github\.dev$`)

var allowedOrigins = map[string]bool{
	"http://localhost:5173": true,
	"http://127.0.0.1:5173": true,
	// LAN dev: a phone hitting the dev machine
	"http://10.0.0.44:5173": true,
}

func originAllowed(origin string) bool {
	// No origin header: server-to-server, curl or same-origin
	if origin == "" {
		return true
	}
	return allowedOrigins[origin] || codespacesOrigin.MatchString(origin)
}

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if originAllowed(origin) && origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.Use(middleware.RequestID())

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// Swagger docs route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API route root
	api := r.Group("/api")
	api.Use(middleware.RateLimiter(container.GetRedisService(), middleware.DefaultRateLimiterConfig))

	// Health
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))

	// Envelopes
	api.GET("/envelopes", controllers.HandleEnvelopeFunc(container, "getEnvelopes"))
	api.POST("/envelopes", controllers.HandleEnvelopeFunc(container, "createEnvelope"))
	api.POST("/envelopes/legacy", controllers.HandleEnvelopeFunc(container, "createLegacyEnvelope"))
	api.DELETE("/envelopes/:id", controllers.HandleEnvelopeFunc(container, "deleteEnvelope"))

	// Weather and location resolution
	api.GET("/weather", controllers.HandleWeatherFunc(container, "getWeather"))
	api.POST("/location/resolve", controllers.HandleLocationFunc(container, "resolveLocation"))

	// Groups
	api.POST("/groups/seed-defaults", controllers.HandleGroupFunc(container, "seedDefaultGroups"))
	api.GET("/groups", controllers.HandleGroupFunc(container, "getGroups"))
	api.POST("/groups", controllers.HandleGroupFunc(container, "createGroup"))

	// Life events
	api.GET("/life-events", controllers.HandleLifeEventFunc(container, "getLifeEvents"))
	api.POST("/life-events", controllers.HandleLifeEventFunc(container, "createLifeEvent"))
}
