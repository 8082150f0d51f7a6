package campaigns

import (
	"errors"
	"net/http"

	users_middleware "promoforge-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignController struct {
	launchService *LaunchService
}

func (c *CampaignController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/:id/launch", c.LaunchWorkspace)
	router.GET("/workspaces/:id/details", c.GetCampaignDetails)
}

// LaunchWorkspace
// @Summary Launch a draft workspace to all active providers
// @Description Sends the assembled campaign to every active provider; the workspace becomes scheduled only if all providers accepted it
// @Tags campaigns
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200 {object} LaunchResult
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 409
// @Failure 412
// @Router /workspaces/{id}/launch [post]
func (c *CampaignController) LaunchWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	result, err := c.launchService.Launch(user, workspaceID)
	if err != nil {
		ctx.JSON(launchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetCampaignDetails
// @Summary Get the assembled campaign view of a workspace
// @Description Returns the workspace with its resolved products, content and schedules, the document providers receive on launch
// @Tags campaigns
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200 {object} LaunchPayload
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /workspaces/{id}/details [get]
func (c *CampaignController) GetCampaignDetails(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	details, err := c.launchService.GetCampaignDetails(user, workspaceID)
	if err != nil {
		ctx.JSON(launchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, details)
}

func launchErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrWorkspaceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidWorkspaceState):
		return http.StatusConflict
	case errors.Is(err, ErrNoActiveProviders):
		return http.StatusPreconditionFailed
	case errors.Is(err, ErrPartialLoad):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
