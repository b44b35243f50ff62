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

// GroupController handles contact group requests
type GroupController struct {
	BaseControllerImpl
}

// NewGroupController creates a new group controller
func (f *ControllerFactory) NewGroupController(ctx *gin.Context) *GroupController {
	return &GroupController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// SeedDefaultGroupsRequest identifies the user to seed groups for
type SeedDefaultGroupsRequest struct {
	UserID int64 `json:"userid" example:"1"`
}

// CreateGroupRequest represents a create-group submission with members
type CreateGroupRequest struct {
	UserID  int64                       `json:"userid" example:"1"`
	Name    string                      `json:"name" example:"college friends"`
	Members []services.GroupMemberInput `json:"members"`
}

// SeedDefaultGroups creates the default friends/colleagues/family groups
// @Summary      Seed Default Groups
// @Description  Insert the default contact groups for a user, skipping existing ones
// @Tags         Group
// @Accept       json
// @Produce      json
// @Param        request body SeedDefaultGroupsRequest true "User"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /groups/seed-defaults [post]
func (c *GroupController) SeedDefaultGroups() {
	var req SeedDefaultGroupsRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "invalid request body")
		return
	}

	groupService := c.Container.GetGroupService()

	if err := groupService.SeedDefaultGroups(req.UserID); err != nil {
		c.failGroup(err, "failed to seed default groups")
		return
	}

	response.Success(c.Context, gin.H{"ok": true})
}

// GetGroups lists a user's groups, defaults first
// @Summary      List Groups
// @Description  Get a user's contact groups with members
// @Tags         Group
// @Produce      json
// @Param        userid query int true "User ID" example:"1"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /groups [get]
func (c *GroupController) GetGroups() {
	userID, _ := strconv.ParseInt(c.Context.Query("userid"), 10, 64)

	groupService := c.Container.GetGroupService()

	groups, err := groupService.GetGroups(userID)
	if err != nil {
		c.failGroup(err, "failed to load groups")
		return
	}

	response.Success(c.Context, groups)
}

// CreateGroup creates a group together with its members in one transaction
// @Summary      Create Group
// @Description  Create a contact group and its member entries atomically
// @Tags         Group
// @Accept       json
// @Produce      json
// @Param        group body CreateGroupRequest true "Group with members"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /groups [post]
func (c *GroupController) CreateGroup() {
	var req CreateGroupRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "invalid request body")
		return
	}

	groupService := c.Container.GetGroupService()

	group, err := groupService.CreateGroup(req.UserID, req.Name, req.Members)
	if err != nil {
		c.failGroup(err, "failed to create group")
		return
	}

	response.Success(c.Context, group)
}

func (c *GroupController) failGroup(err error, generic string) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		response.ParamError(c.Context, vErr.Message)
		return
	}

	config.Error("%s: %v", generic, err)
	response.FailWithMessage(c.Context, code.ErrDatabase, generic, nil)
}

// HandleGroupFunc returns a Gin handler dispatching group requests
func HandleGroupFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewGroupController(ctx)

		switch method {
		case "seedDefaultGroups":
			controller.SeedDefaultGroups()
		case "getGroups":
			controller.GetGroups()
		case "createGroup":
			controller.CreateGroup()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}
