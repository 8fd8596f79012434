package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mathiuSpv/markap-back-apps-int/services"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Admin,
// and Internal route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	cartSvc := services.NewCartService(db)
	productSvc := services.NewProductService(db)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, cartSvc, productSvc)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, productSvc)

	// Internal routes for the checkout collaborator (API-key-protected)
	SetupInternalRoutes(r, productSvc)
}
