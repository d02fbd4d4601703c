package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chinmay09gowda/e-commerce.website/cart"
	orderControllers "github.com/chinmay09gowda/e-commerce.website/controllers/order"
	"github.com/chinmay09gowda/e-commerce.website/middleware"
	"github.com/chinmay09gowda/e-commerce.website/utils"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, manager *cart.Manager, mailer *utils.EmailService) {
	orders := r.Group("/orders")
	orders.Use(middleware.ResolveSession)
	{
		// Checkout: turn the session cart into an order
		orders.POST("", orderControllers.PlaceOrderHandler(db, manager, mailer))

		// Orders placed by this session
		orders.GET("", orderControllers.GetSessionOrdersHandler(db))

		// Single order, fetched by the confirmation page
		orders.GET("/:orderID", orderControllers.GetOrderHandler(db))
	}
}
