package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/mathiuSpv/markap-back-apps-int/controllers/product"
	"github.com/mathiuSpv/markap-back-apps-int/middleware"
	"github.com/mathiuSpv/markap-back-apps-int/services"
)

// SetupInternalRoutes registers the "/internal/*" endpoints used by the
// checkout collaborator. Requires API-Key middleware.
func SetupInternalRoutes(r *gin.Engine, productSvc *services.ProductService) {
	internalGroup := r.Group("/internal")
	internalGroup.Use(middleware.ValidateAPIKey)
	{
		internalGroup.POST("/stock/consume", productcontroller.ConsumeStock(productSvc))
	}
}
