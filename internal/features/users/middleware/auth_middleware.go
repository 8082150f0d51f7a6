package users_middleware

import (
	"net/http"
	"strings"

	users_models "promoforge-backend/internal/features/users/models"
	users_services "promoforge-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Authorization header is required"},
			)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Authorization header must be a Bearer token"},
			)
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)

	return user, ok
}
