package providers

import (
	"net/http"

	users_middleware "promoforge-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProviderController struct {
	providerService *ProviderService
}

func (c *ProviderController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/providers", c.SaveProvider)
	router.GET("/providers", c.GetProviders)
	router.GET("/providers/:id", c.GetProvider)
	router.DELETE("/providers/:id", c.DeleteProvider)
	router.POST("/providers/:id/test", c.TestConnection)
}

// SaveProvider
// @Summary Save a campaign provider
// @Description Create or update a webhook automation provider; the configuration is validated before it can be stored active
// @Tags providers
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param request body Provider true "Provider data"
// @Success 200 {object} Provider
// @Failure 400
// @Failure 401
// @Router /providers [post]
func (c *ProviderController) SaveProvider(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request Provider
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.providerService.SaveProvider(user, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request.HideSensitiveData()

	ctx.JSON(http.StatusOK, request)
}

// GetProviders
// @Summary Get all providers of the current user
// @Tags providers
// @Produce json
// @Param Authorization header string true "JWT token"
// @Success 200 {array} Provider
// @Failure 401
// @Router /providers [get]
func (c *ProviderController) GetProviders(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	providers, err := c.providerService.GetProviders(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, providers)
}

// GetProvider
// @Summary Get a provider by ID
// @Tags providers
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Provider ID"
// @Success 200 {object} Provider
// @Failure 400
// @Failure 401
// @Router /providers/{id} [get]
func (c *ProviderController) GetProvider(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider ID"})
		return
	}

	provider, err := c.providerService.GetProvider(user, id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, provider)
}

// DeleteProvider
// @Summary Delete a provider
// @Tags providers
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Provider ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /providers/{id} [delete]
func (c *ProviderController) DeleteProvider(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider ID"})
		return
	}

	if err := c.providerService.DeleteProvider(user, id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "provider deleted successfully"})
}

// TestConnection
// @Summary Send a test request to a provider
// @Description Sends a test_connection action through the stored configuration and reports the outcome
// @Tags providers
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Provider ID"
// @Success 200 {object} DispatchOutcome
// @Failure 400
// @Failure 401
// @Router /providers/{id}/test [post]
func (c *ProviderController) TestConnection(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider ID"})
		return
	}

	outcome, err := c.providerService.TestConnection(user, id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, outcome)
}
