package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theblakearruda/memory-app-backend/services/container"
)

// HealthController reports service health
type HealthController struct {
	BaseControllerImpl
}

// NewHealthController creates a new health controller
func (f *ControllerFactory) NewHealthController(ctx *gin.Context) *HealthController {
	return &HealthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// Ping reports component status
// @Summary      Health Check
// @Description  Report database and redis connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	dbStatus := "ok"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "not configured"
	if redisService := c.Container.GetRedisService(); redisService != nil {
		redisStatus = "ok"
		if err := redisService.Ping(c.Context.Request.Context()); err != nil {
			redisStatus = "unreachable"
		}
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
		"db":      dbStatus,
		"redis":   redisStatus,
	})
}

// HandleHealthFunc returns a Gin handler dispatching health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewHealthController(ctx)

		switch method {
		case "ping":
			controller.Ping()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
