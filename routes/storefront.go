package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chinmay09gowda/e-commerce.website/auth"
	"github.com/chinmay09gowda/e-commerce.website/cart"
	cartControllers "github.com/chinmay09gowda/e-commerce.website/controllers/cart"
	productcontroller "github.com/chinmay09gowda/e-commerce.website/controllers/product"
	"github.com/chinmay09gowda/e-commerce.website/middleware"
)

// SetupStorefrontRoutes registers the public catalog and cart
// endpoints. Cart routes resolve a session id on every request.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, manager *cart.Manager) {
	// ──────────────── Session ────────────────
	r.POST("/session", auth.CreateSession()) // POST /session

	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts(db))            // GET /products
	r.GET("/products/:slug", productcontroller.GetProductBySlug(db)) // GET /products/:slug

	// ──────────────── Browse Categories ────────────────
	r.GET("/categories", productcontroller.GetAllCategories(db)) // GET /categories

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ResolveSession)
	{
		cartGroup.GET("", cartControllers.GetCart(manager))                       // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(db, manager))              // POST /cart
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(manager))    // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(manager)) // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(manager))                  // DELETE /cart
	}
}
