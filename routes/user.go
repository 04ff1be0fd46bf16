package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Darrenmartin378/MidtermLabExam/controllers/cart"
	productcontroller "github.com/Darrenmartin378/MidtermLabExam/controllers/product"
	"github.com/Darrenmartin378/MidtermLabExam/middleware"
)

// SetupUserRoutes registers catalog browsing and the shopping cart.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// ──────────────── Browse Products (public) ────────────────
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.PUT("/:id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db))
	}
	api.GET("/cart-count", middleware.ValidateToken, cartControllers.GetCartCount(db))
}
