package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/mathiuSpv/markap-back-apps-int/controllers/admin"
	productcontroller "github.com/mathiuSpv/markap-back-apps-int/controllers/product"
	userControllers "github.com/mathiuSpv/markap-back-apps-int/controllers/user"
	"github.com/mathiuSpv/markap-back-apps-int/middleware"
	"github.com/mathiuSpv/markap-back-apps-int/services"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, productSvc *services.ProductService) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		adminGroup.PUT("/products/:id/feature", adminController.FeatureProduct(productSvc))

		// ─────────── Category Management ───────────
		adminGroup.POST("/categories", productcontroller.CreateCategory(db))
	}
}
