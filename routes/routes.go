package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chinmay09gowda/e-commerce.website/cart"
	"github.com/chinmay09gowda/e-commerce.website/utils"
)

// SetupRoutes is the single entry‐point that wires up the storefront,
// order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, manager *cart.Manager, mailer *utils.EmailService) {
	// Public storefront routes (session-scoped)
	SetupStorefrontRoutes(r, db, manager)

	// Checkout and order lookup
	SetupOrderRoutes(r, db, manager, mailer)

	// Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
