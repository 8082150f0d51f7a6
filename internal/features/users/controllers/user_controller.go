package users_controllers

import (
	"net/http"

	users_dto "promoforge-backend/internal/features/users/dto"
	users_middleware "promoforge-backend/internal/features/users/middleware"
	users_services "promoforge-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *users_services.UserService
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/signup", c.SignUp)
	router.POST("/users/signin", c.SignIn)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetProfile)
}

// SignUp
// @Summary Register a new user
// @Description Create a user account with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignUpRequestDTO true "Sign up data"
// @Success 200
// @Failure 400
// @Router /users/signup [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	var request users_dto.SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.userService.SignUp(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user created successfully"})
}

// SignIn
// @Summary Sign in
// @Description Exchange email + password for an access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignInRequestDTO true "Sign in data"
// @Success 200 {object} users_dto.SignInResponseDTO
// @Failure 400
// @Router /users/signin [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	var request users_dto.SignInRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.userService.SignIn(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProfile
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Param Authorization header string true "JWT token"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.UserProfileResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}
