package content

import (
	"net/http"

	users_middleware "promoforge-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContentController struct {
	contentService *ContentService
}

func (c *ContentController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/content/social", c.SaveSocialContent)
	router.GET("/content/social", c.GetSocialContent)
	router.DELETE("/content/social/:id", c.DeleteSocialContent)

	router.POST("/content/images", c.SaveGeneratedImage)
	router.GET("/content/images", c.GetGeneratedImages)
	router.DELETE("/content/images/:id", c.DeleteGeneratedImage)
}

// SaveSocialContent
// @Summary Save a social promotional post
// @Tags content
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param request body SocialContent true "Social content data"
// @Success 200 {object} SocialContent
// @Failure 400
// @Failure 401
// @Router /content/social [post]
func (c *ContentController) SaveSocialContent(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request SocialContent
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.contentService.SaveSocialContent(user, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// GetSocialContent
// @Summary Get all social posts of the current user
// @Tags content
// @Produce json
// @Param Authorization header string true "JWT token"
// @Success 200 {array} SocialContent
// @Failure 401
// @Router /content/social [get]
func (c *ContentController) GetSocialContent(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := c.contentService.GetUserSocialContent(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteSocialContent
// @Summary Delete a social post
// @Tags content
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Content ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /content/social/{id} [delete]
func (c *ContentController) DeleteSocialContent(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid content ID"})
		return
	}

	if err := c.contentService.DeleteSocialContent(user, id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "content deleted successfully"})
}

// SaveGeneratedImage
// @Summary Save a generated image
// @Tags content
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param request body GeneratedImage true "Generated image data"
// @Success 200 {object} GeneratedImage
// @Failure 400
// @Failure 401
// @Router /content/images [post]
func (c *ContentController) SaveGeneratedImage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request GeneratedImage
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.contentService.SaveGeneratedImage(user, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// GetGeneratedImages
// @Summary Get all generated images of the current user
// @Tags content
// @Produce json
// @Param Authorization header string true "JWT token"
// @Success 200 {array} GeneratedImage
// @Failure 401
// @Router /content/images [get]
func (c *ContentController) GetGeneratedImages(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := c.contentService.GetUserGeneratedImages(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// DeleteGeneratedImage
// @Summary Delete a generated image
// @Tags content
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Image ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /content/images/{id} [delete]
func (c *ContentController) DeleteGeneratedImage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid image ID"})
		return
	}

	if err := c.contentService.DeleteGeneratedImage(user, id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "image deleted successfully"})
}
