package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Darrenmartin378/MidtermLabExam/controllers/product"
	"github.com/Darrenmartin378/MidtermLabExam/middleware"
)

// SetupAdminRoutes registers catalog management. Requires the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productAdmin := api.Group("/products")
	productAdmin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		productAdmin.POST("", productcontroller.CreateProduct(db))
		productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
		productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
	}
}
