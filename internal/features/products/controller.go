package products

import (
	"net/http"

	users_middleware "promoforge-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductController struct {
	productService *ProductService
}

func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/products", c.SaveProduct)
	router.GET("/products", c.GetProducts)
	router.GET("/products/:id", c.GetProduct)
	router.DELETE("/products/:id", c.DeleteProduct)
}

// SaveProduct
// @Summary Save a product
// @Description Create or update a product
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param request body Product true "Product data"
// @Success 200 {object} Product
// @Failure 400
// @Failure 401
// @Router /products [post]
func (c *ProductController) SaveProduct(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request Product
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.productService.SaveProduct(user, &request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// GetProducts
// @Summary Get all products of the current user
// @Tags products
// @Produce json
// @Param Authorization header string true "JWT token"
// @Success 200 {array} Product
// @Failure 401
// @Router /products [get]
func (c *ProductController) GetProducts(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	products, err := c.productService.GetUserProducts(user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// GetProduct
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Product ID"
// @Success 200 {object} Product
// @Failure 400
// @Failure 401
// @Router /products/{id} [get]
func (c *ProductController) GetProduct(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	product, err := c.productService.GetProduct(user, id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param Authorization header string true "JWT token"
// @Param id path string true "Product ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /products/{id} [delete]
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	if err := c.productService.DeleteProduct(user, id); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
