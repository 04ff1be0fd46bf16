package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Darrenmartin378/MidtermLabExam/controllers/auth"
	"github.com/Darrenmartin378/MidtermLabExam/middleware"
)

// SetupAuthRoutes registers registration, login, and logout.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/register", authControllers.Register(db))
	api.POST("/login", authControllers.Login(db))
	api.POST("/logout", middleware.ValidateToken, authControllers.Logout())
}
