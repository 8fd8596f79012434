package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/mathiuSpv/markap-back-apps-int/controllers/cart"
	productControllers "github.com/mathiuSpv/markap-back-apps-int/controllers/product"
	userControllers "github.com/mathiuSpv/markap-back-apps-int/controllers/user"
	"github.com/mathiuSpv/markap-back-apps-int/middleware"
	"github.com/mathiuSpv/markap-back-apps-int/services"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cartSvc *services.CartService, productSvc *services.ProductService) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.POST("", cartControllers.CreateCart(cartSvc))                         // POST /user/cart
			cartGroup.GET("", cartControllers.GetActiveCart(cartSvc))                       // GET /user/cart
			cartGroup.PUT("/pay", cartControllers.MarkCartPaid(cartSvc))                    // PUT /user/cart/pay
			cartGroup.POST("/items", cartControllers.AddCartItem(cartSvc))                  // POST /user/cart/items
			cartGroup.DELETE("/items/:product_id", cartControllers.RemoveCartItem(cartSvc)) // DELETE /user/cart/items/:product_id
		}

		// ──────────────── Cart History ────────────────
		cartsGroup := userGroup.Group("/carts")
		{
			cartsGroup.GET("", cartControllers.GetCartHistory(cartSvc))               // GET /user/carts
			cartsGroup.GET("/:cart_id", cartControllers.GetCart(cartSvc))             // GET /user/carts/:cart_id
			cartsGroup.GET("/:cart_id/items", cartControllers.ListCartItems(cartSvc)) // GET /user/carts/:cart_id/items
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(productSvc))                  // GET /user/products
		userGroup.GET("/products/featured", productControllers.GetFeaturedProducts(productSvc)) // GET /user/products/featured
		userGroup.GET("/products/:id", productControllers.GetProductByID(productSvc))           // GET /user/products/:id

		// ──────────────── Sell Products ────────────────
		userGroup.POST("/products", productControllers.CreateProduct(productSvc))       // POST /user/products
		userGroup.PUT("/products/:id", productControllers.UpdateProduct(productSvc))    // PUT /user/products/:id
		userGroup.DELETE("/products/:id", productControllers.DeleteProduct(productSvc)) // DELETE /user/products/:id

		// ──────────────── Favorites ────────────────
		userGroup.GET("/favorites", userControllers.GetFavorites(db))                  // GET /user/favorites
		userGroup.POST("/favorites/:product_id", userControllers.AddFavorite(db))      // POST /user/favorites/:product_id
		userGroup.DELETE("/favorites/:product_id", userControllers.RemoveFavorite(db)) // DELETE /user/favorites/:product_id

		// ──────────────── Browse Categories ────────────────
		userGroup.GET("/categories", productControllers.GetAllCategories(db))                           // GET /user/categories
		userGroup.GET("/categories/:id/products", productControllers.GetProductsByCategory(productSvc)) // GET /user/categories/:id/products
	}
}
