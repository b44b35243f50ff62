package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/internal/error/code"
	"github.com/theblakearruda/memory-app-backend/internal/error/response"
	"github.com/theblakearruda/memory-app-backend/services"
	"github.com/theblakearruda/memory-app-backend/services/container"
)

// LifeEventController handles life-event timeline requests
type LifeEventController struct {
	BaseControllerImpl
}

// NewLifeEventController creates a new life event controller
func (f *ControllerFactory) NewLifeEventController(ctx *gin.Context) *LifeEventController {
	return &LifeEventController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// CreateLifeEventRequest represents a life event submission
type CreateLifeEventRequest struct {
	UserID          int64  `json:"userid" example:"1"`
	Title           string `json:"title" example:"moved to portland"`
	Category        string `json:"category" example:"relocation"`
	EventDate       string `json:"event_date" example:"2019-08-01"`
	Location        string `json:"location" example:"Portland, Oregon"`
	Story           string `json:"story"`
	CoverURL        string `json:"cover_url"`
	AudienceGroupID *uint  `json:"audience_group_id"`
}

// GetLifeEvents lists a user's life events, newest first
// @Summary      List Life Events
// @Description  Get a user's life events ordered by creation time descending
// @Tags         LifeEvent
// @Produce      json
// @Param        userid query int true "User ID" example:"1"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /life-events [get]
func (c *LifeEventController) GetLifeEvents() {
	userID, _ := strconv.ParseInt(c.Context.Query("userid"), 10, 64)

	lifeEventService := c.Container.GetLifeEventService()

	events, err := lifeEventService.GetLifeEvents(userID)
	if err != nil {
		c.failLifeEvent(err, "failed to load life events")
		return
	}

	response.Success(c.Context, events)
}

// CreateLifeEvent persists a life event
// @Summary      Create Life Event
// @Description  Create a life event; category defaults to "other"
// @Tags         LifeEvent
// @Accept       json
// @Produce      json
// @Param        event body CreateLifeEventRequest true "Life event"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /life-events [post]
func (c *LifeEventController) CreateLifeEvent() {
	var req CreateLifeEventRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "invalid request body")
		return
	}

	var eventDate *time.Time
	if req.EventDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			response.ParamError(c.Context, "event_date invalid (YYYY-MM-DD)")
			return
		}
		eventDate = &parsed
	}

	lifeEventService := c.Container.GetLifeEventService()

	event, err := lifeEventService.CreateLifeEvent(&services.CreateLifeEventRequest{
		UserID:          req.UserID,
		Title:           req.Title,
		Category:        req.Category,
		EventDate:       eventDate,
		Location:        req.Location,
		Story:           req.Story,
		CoverURL:        req.CoverURL,
		AudienceGroupID: req.AudienceGroupID,
	})
	if err != nil {
		c.failLifeEvent(err, "failed to create life event")
		return
	}

	response.Success(c.Context, event)
}

func (c *LifeEventController) failLifeEvent(err error, generic string) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		response.ParamError(c.Context, vErr.Message)
		return
	}

	config.Error("%s: %v", generic, err)
	response.FailWithMessage(c.Context, code.ErrDatabase, generic, nil)
}

// HandleLifeEventFunc returns a Gin handler dispatching life event requests
func HandleLifeEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewLifeEventController(ctx)

		switch method {
		case "getLifeEvents":
			controller.GetLifeEvents()
		case "createLifeEvent":
			controller.CreateLifeEvent()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
