package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mathiuSpv/markap-back-apps-int/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/token", auth.Token(db))
	}
}
