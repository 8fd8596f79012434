package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mathiuSpv/markap-back-apps-int/services"
)

type ConsumeStockInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// ConsumeStock decrements stock for a product. Called by the checkout
// flow once a cart is paid, on the API-key protected internal surface.
// POST /internal/stock/consume
func ConsumeStock(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ConsumeStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := svc.ConsumeStock(c.Request.Context(), input.ProductID, input.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
