package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theblakearruda/memory-app-backend/internal/error/response"
	"github.com/theblakearruda/memory-app-backend/services/container"
)

// WeatherController exposes the enrichment lookup directly
type WeatherController struct {
	BaseControllerImpl
}

// NewWeatherController creates a new weather controller
func (f *ControllerFactory) NewWeatherController(ctx *gin.Context) *WeatherController {
	return &WeatherController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetWeather returns the weather triple for a free-text location. The same
// fail-soft service backs envelope creation, so an unknown location or an
// upstream failure returns the all-null triple with a 200, never an error.
// @Summary      Get Weather For Location
// @Description  Resolve a location string to a weather descriptor, code and Fahrenheit temperature
// @Tags         Weather
// @Produce      json
// @Param        location query string true "Free-text location" example:"Portland, Oregon"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /weather [get]
func (c *WeatherController) GetWeather() {
	location := strings.TrimSpace(c.Context.Query("location"))
	if location == "" {
		response.ParamError(c.Context, "location required")
		return
	}

	weatherService := c.Container.GetWeatherService()
	result := weatherService.GetWeatherForLocation(c.Context.Request.Context(), location)

	response.Success(c.Context, result)
}

// HandleWeatherFunc returns a Gin handler dispatching weather requests
func HandleWeatherFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewWeatherController(ctx)

		switch method {
		case "getWeather":
			controller.GetWeather()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
