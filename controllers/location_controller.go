package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/internal/error/code"
	"github.com/theblakearruda/memory-app-backend/internal/error/response"
	"github.com/theblakearruda/memory-app-backend/services"
	"github.com/theblakearruda/memory-app-backend/services/container"
)

// PositionFailure is the typed outcome of a failed client positioning
// attempt, as reported by the device
type PositionFailure string

const (
	PositionPermissionDenied PositionFailure = "permission_denied"
	PositionUnavailable      PositionFailure = "unavailable"
	PositionTimedOut         PositionFailure = "timeout"
)

// Status returns the user-legible message for a positioning failure
func (p PositionFailure) Status() string {
	switch p {
	case PositionPermissionDenied:
		return "location permission denied."
	case PositionUnavailable:
		return "gps unavailable."
	case PositionTimedOut:
		return "gps timed out."
	default:
		return "gps error."
	}
}

// LocationController turns GPS coordinates into a display location
type LocationController struct {
	BaseControllerImpl
}

// NewLocationController creates a new location controller
func (f *ControllerFactory) NewLocationController(ctx *gin.Context) *LocationController {
	return &LocationController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// ResolveLocationRequest carries either coordinates from a successful
// positioning attempt or the failure kind of an unsuccessful one
type ResolveLocationRequest struct {
	Latitude      *float64 `json:"latitude" example:"45.5152"`
	Longitude     *float64 `json:"longitude" example:"-122.6784"`
	PositionError string   `json:"position_error,omitempty" example:"permission_denied"`
}

// ResolveLocation reverse-geocodes coordinates to "City, State". The whole
// operation is advisory: every failure is a distinct non-fatal status and the
// client keeps whatever location text it already had.
// @Summary      Resolve Location
// @Description  Convert GPS coordinates into a short human display string
// @Tags         Location
// @Accept       json
// @Produce      json
// @Param        position body ResolveLocationRequest true "Coordinates or positioning failure"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /location/resolve [post]
func (c *LocationController) ResolveLocation() {
	var req ResolveLocationRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "invalid request body")
		return
	}

	if req.PositionError != "" {
		failure := PositionFailure(req.PositionError)
		response.FailWithMessage(c.Context, code.ErrPositionUnavailable, failure.Status(), nil)
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		response.ParamError(c.Context, "latitude and longitude required")
		return
	}

	geocodingService := c.Container.GetGeocodingService()

	place, err := geocodingService.ReverseGeocode(c.Context.Request.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		if errors.Is(err, services.ErrNoPlaceName) {
			response.FailWithMessage(c.Context, code.ErrNoPlaceName, "got coords, but couldn't format a city/state.", nil)
			return
		}
		config.Warning("reverse geocode failed: %v", err)
		response.FailWithMessage(c.Context, code.ErrReverseGeocodeFailed, "couldn't convert gps to a city/state.", nil)
		return
	}

	response.SuccessWithMessage(c.Context, "location set: "+place.Display, place)
}

// HandleLocationFunc returns a Gin handler dispatching location requests
func HandleLocationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewLocationController(ctx)

		switch method {
		case "resolveLocation":
			controller.ResolveLocation()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
