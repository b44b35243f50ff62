package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/theblakearruda/memory-app-backend/config"
	"github.com/theblakearruda/memory-app-backend/internal/error/code"
	"github.com/theblakearruda/memory-app-backend/internal/error/response"
	"github.com/theblakearruda/memory-app-backend/services"
	"github.com/theblakearruda/memory-app-backend/services/container"
)

// EnvelopeController handles envelope requests
type EnvelopeController struct {
	BaseControllerImpl
}

// NewEnvelopeController creates a new envelope controller
func (f *ControllerFactory) NewEnvelopeController(ctx *gin.Context) *EnvelopeController {
	return &EnvelopeController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// CreateEnvelopeRequest represents a normal envelope submission
type CreateEnvelopeRequest struct {
	UserID   int64  `json:"userid" example:"1"`
	PhotoURL string `json:"photourl" example:"https://cdn.example.com/a.jpg"`
	Caption  string `json:"caption" example:"first day at the lake"`
	Location string `json:"location" example:"Portland, Oregon"`
}

// CreateLegacyEnvelopeRequest represents a backdated envelope submission
type CreateLegacyEnvelopeRequest struct {
	CreateEnvelopeRequest
	LegacyDate string `json:"legacy_date" example:"1999-12-31"`
	LegacyTime string `json:"legacy_time" example:"09:30"`
}

// GetEnvelopes returns all envelopes, newest first
// @Summary      List Envelopes
// @Description  Get all envelopes ordered by effective timestamp descending
// @Tags         Envelope
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /envelopes [get]
func (c *EnvelopeController) GetEnvelopes() {
	envelopeService := c.Container.GetEnvelopeService()

	envelopes, err := envelopeService.GetAllEnvelopes()
	if err != nil {
		config.Error("failed to load envelopes: %v", err)
		response.FailWithMessage(c.Context, code.ErrDatabase, "failed to load envelopes", nil)
		return
	}

	response.Success(c.Context, envelopes)
}

// CreateEnvelope creates an envelope stamped with the current time
// @Summary      Create Envelope
// @Description  Validate a submission, enrich it with weather context and persist it
// @Tags         Envelope
// @Accept       json
// @Produce      json
// @Param        envelope body CreateEnvelopeRequest true "Envelope submission"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /envelopes [post]
func (c *EnvelopeController) CreateEnvelope() {
	var req CreateEnvelopeRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "invalid request body")
		return
	}

	envelopeService := c.Container.GetEnvelopeService()

	envelope, err := envelopeService.CreateEnvelope(c.Context.Request.Context(), &services.CreateEnvelopeRequest{
		UserID:   req.UserID,
		PhotoURL: req.PhotoURL,
		Caption:  req.Caption,
		Location: req.Location,
	})
	if err != nil {
		c.failCreate(err)
		return
	}

	response.SuccessWithMessage(c.Context, "envelope saved successfully", envelope)
}

// CreateLegacyEnvelope creates an envelope backdated to a user-supplied date
// @Summary      Create Legacy Envelope
// @Description  Same as create, with the timestamp resolved from legacy_date and optional legacy_time
// @Tags         Envelope
// @Accept       json
// @Produce      json
// @Param        envelope body CreateLegacyEnvelopeRequest true "Legacy envelope submission"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /envelopes/legacy [post]
func (c *EnvelopeController) CreateLegacyEnvelope() {
	var req CreateLegacyEnvelopeRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "invalid request body")
		return
	}

	envelopeService := c.Container.GetEnvelopeService()

	envelope, err := envelopeService.CreateLegacyEnvelope(c.Context.Request.Context(), &services.CreateLegacyEnvelopeRequest{
		CreateEnvelopeRequest: services.CreateEnvelopeRequest{
			UserID:   req.UserID,
			PhotoURL: req.PhotoURL,
			Caption:  req.Caption,
			Location: req.Location,
		},
		LegacyDate: req.LegacyDate,
		LegacyTime: req.LegacyTime,
	})
	if err != nil {
		c.failCreate(err)
		return
	}

	response.SuccessWithMessage(c.Context, "legacy envelope saved successfully", envelope)
}

// DeleteEnvelope removes an envelope by id. Deleting an id that never
// existed still reports success.
// @Summary      Delete Envelope
// @Description  Delete one envelope by id, idempotently
// @Tags         Envelope
// @Produce      json
// @Param        id path int true "Envelope ID" example:"1"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /envelopes/{id} [delete]
func (c *EnvelopeController) DeleteEnvelope() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.Fail(c.Context, code.ErrEnvelopeInvalidID, nil)
		return
	}

	envelopeService := c.Container.GetEnvelopeService()

	if err := envelopeService.DeleteEnvelope(uint(id)); err != nil {
		config.Error("failed to delete envelope %d: %v", id, err)
		response.FailWithMessage(c.Context, code.ErrDatabase, "failed to delete envelope", nil)
		return
	}

	response.SuccessWithMessage(c.Context, "deleted", gin.H{"id": id})
}

// failCreate maps a creation failure: validation messages go to the caller,
// anything else is logged in full and reported generically
func (c *EnvelopeController) failCreate(err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		response.ParamError(c.Context, vErr.Message)
		return
	}

	config.Error("failed to save envelope: %v", err)
	response.FailWithMessage(c.Context, code.ErrDatabase, "failed to save envelope", nil)
}

// HandleEnvelopeFunc returns a Gin handler dispatching envelope requests
func HandleEnvelopeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewEnvelopeController(ctx)

		switch method {
		case "getEnvelopes":
			controller.GetEnvelopes()
		case "createEnvelope":
			controller.CreateEnvelope()
		case "createLegacyEnvelope":
			controller.CreateLegacyEnvelope()
		case "deleteEnvelope":
			controller.DeleteEnvelope()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
