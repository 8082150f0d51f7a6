package workspaces_controllers

import (
	"net/http"
	"strconv"

	users_middleware "promoforge-backend/internal/features/users/middleware"
	workspaces_dto "promoforge-backend/internal/features/workspaces/dto"
	workspaces_services "promoforge-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces", c.CreateWorkspace)
	router.GET("/workspaces", c.GetWorkspaces)
	router.GET("/workspaces/:id", c.GetWorkspace)
	router.PUT("/workspaces/:id/name", c.RenameWorkspace)
	router.DELETE("/workspaces/:id", c.DeleteWorkspace)

	router.POST("/workspaces/:id/products", c.AddProduct)
	router.GET("/workspaces/:id/products", c.GetProducts)
	router.DELETE("/workspaces/:id/products/:productId", c.RemoveProduct)

	router.POST("/workspaces/:id/content", c.AddContent)
	router.GET("/workspaces/:id/content", c.GetContent)
	router.DELETE("/workspaces/:id/content/:contentId", c.RemoveContent)

	router.GET("/workspaces/:id/audit-logs", c.GetAuditLogs)

	router.POST("/workspaces/:id/schedules", c.AddSchedule)
	router.GET("/workspaces/:id/schedules", c.GetSchedules)
	router.DELETE("/workspaces/:id/schedules/:scheduleId", c.RemoveSchedule)
}

// CreateWorkspace
// @Summary Create a new draft workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param request body workspaces_dto.CreateWorkspaceRequestDTO true "Workspace data"
// @Success 201 {object} workspaces_models.Workspace
// @Failure 400
// @Failure 401
// @Router /workspaces [post]
func (c *WorkspaceController) CreateWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request workspaces_dto.CreateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := c.workspaceService.CreateWorkspace(user, request.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, workspace)
}

// GetWorkspaces
// @Summary Get all workspaces of the current user
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Success 200 {array} workspaces_models.Workspace
// @Failure 401
// @Router /workspaces [get]
func (c *WorkspaceController) GetWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaces, err := c.workspaceService.GetUserWorkspaces(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspaces)
}

// GetWorkspace
// @Summary Get a workspace by id
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 400
// @Failure 401
// @Router /workspaces/{id} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
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

	workspace, err := c.workspaceService.GetWorkspace(user, workspaceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// RenameWorkspace
// @Summary Rename a draft workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.RenameWorkspaceRequestDTO true "New name"
// @Success 200 {object} workspaces_models.Workspace
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/name [put]
func (c *WorkspaceController) RenameWorkspace(ctx *gin.Context) {
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

	var request workspaces_dto.RenameWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := c.workspaceService.RenameWorkspace(user, workspaceID, request.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// DeleteWorkspace
// @Summary Delete a workspace with all its associations
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /workspaces/{id} [delete]
func (c *WorkspaceController) DeleteWorkspace(ctx *gin.Context) {
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

	if err := c.workspaceService.DeleteWorkspace(user, workspaceID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Workspace deleted successfully"})
}

// AddProduct
// @Summary Add a product to a draft workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.AddProductRequestDTO true "Product reference"
// @Success 201 {object} workspaces_models.WorkspaceProduct
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/products [post]
func (c *WorkspaceController) AddProduct(ctx *gin.Context) {
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

	var request workspaces_dto.AddProductRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	association, err := c.workspaceService.AddProduct(user, workspaceID, request.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, association)
}

// GetProducts
// @Summary Get products selected in a workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200 {array} workspaces_models.WorkspaceProduct
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/products [get]
func (c *WorkspaceController) GetProducts(ctx *gin.Context) {
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

	associations, err := c.workspaceService.GetProducts(user, workspaceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, associations)
}

// RemoveProduct
// @Summary Remove a product from a draft workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param productId path string true "Product ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/products/{productId} [delete]
func (c *WorkspaceController) RemoveProduct(ctx *gin.Context) {
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

	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := c.workspaceService.RemoveProduct(user, workspaceID, productID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product removed from workspace"})
}

// AddContent
// @Summary Add a content item to a draft workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.AddContentRequestDTO true "Content reference"
// @Success 201 {object} workspaces_models.WorkspaceContent
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/content [post]
func (c *WorkspaceController) AddContent(ctx *gin.Context) {
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

	var request workspaces_dto.AddContentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	association, err := c.workspaceService.AddContent(
		user, workspaceID, request.ContentType, request.ContentID,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, association)
}

// GetContent
// @Summary Get content items selected in a workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200 {array} workspaces_models.WorkspaceContent
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/content [get]
func (c *WorkspaceController) GetContent(ctx *gin.Context) {
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

	associations, err := c.workspaceService.GetContent(user, workspaceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, associations)
}

// RemoveContent
// @Summary Remove a content item and its schedules from a draft workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param contentId path string true "Content ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/content/{contentId} [delete]
func (c *WorkspaceController) RemoveContent(ctx *gin.Context) {
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

	contentID, err := uuid.Parse(ctx.Param("contentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	if err := c.workspaceService.RemoveContent(user, workspaceID, contentID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Content removed from workspace"})
}

// GetAuditLogs
// @Summary Get recent audit entries of a workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} audit_logs.AuditLog
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/audit-logs [get]
func (c *WorkspaceController) GetAuditLogs(ctx *gin.Context) {
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

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	logs, err := c.workspaceService.GetAuditLogs(user, workspaceID, limit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// AddSchedule
// @Summary Schedule a content item for publication
// @Tags workspaces
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.AddScheduleRequestDTO true "Schedule data"
// @Success 201 {object} workspaces_models.WorkspaceSchedule
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/schedules [post]
func (c *WorkspaceController) AddSchedule(ctx *gin.Context) {
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

	var request workspaces_dto.AddScheduleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := c.workspaceService.AddSchedule(
		user, workspaceID, request.Platform, request.ContentID, request.ScheduledAt,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, schedule)
}

// GetSchedules
// @Summary Get publication schedules of a workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Success 200 {array} workspaces_models.WorkspaceSchedule
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/schedules [get]
func (c *WorkspaceController) GetSchedules(ctx *gin.Context) {
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

	schedules, err := c.workspaceService.GetSchedules(user, workspaceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, schedules)
}

// RemoveSchedule
// @Summary Remove a schedule from a draft workspace
// @Tags workspaces
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Workspace ID"
// @Param scheduleId path string true "Schedule ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /workspaces/{id}/schedules/{scheduleId} [delete]
func (c *WorkspaceController) RemoveSchedule(ctx *gin.Context) {
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

	scheduleID, err := uuid.Parse(ctx.Param("scheduleId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	if err := c.workspaceService.RemoveSchedule(user, workspaceID, scheduleID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Schedule removed from workspace"})
}
