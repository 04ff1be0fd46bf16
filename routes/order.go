package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Darrenmartin378/MidtermLabExam/controllers/order"
	"github.com/Darrenmartin378/MidtermLabExam/middleware"
)

// SetupOrderRoutes registers checkout and the order views.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// Customer side
	api.POST("/checkout", middleware.ValidateToken, orderControllers.CheckoutHandler(db))
	api.GET("/my-orders", middleware.ValidateToken, orderControllers.GetMyOrdersHandler(db))

	// Admin side
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		orders.GET("", orderControllers.GetAllOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:id/complete", orderControllers.MarkOrderCompleteHandler(db))
	}
}
