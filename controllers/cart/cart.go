package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chinmay09gowda/e-commerce.website/cart"
	"github.com/chinmay09gowda/e-commerce.website/middleware"
	"github.com/chinmay09gowda/e-commerce.website/models"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

func cartResponse(c *cart.Cart) gin.H {
	return gin.H{
		"items":      c.Lines(),
		"total":      c.Total(),
		"item_count": c.ItemCount(),
	}
}

// GET /cart
func GetCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, err := manager.Get(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(sessionCart))
	}
}

// POST /cart
func AddCartItem(db *gorm.DB, manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
			return
		}

		productID, err := uuid.Parse(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		sessionCart, err := manager.Get(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		// Stock is checked here, not inside the cart container.
		requested := input.Quantity
		for _, line := range sessionCart.Lines() {
			if line.Product.ID == product.ID {
				requested += line.Quantity
				break
			}
		}
		if requested > product.Stock {
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock for " + product.Name})
			return
		}

		if err := sessionCart.Add(c.Request.Context(), product, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, cartResponse(sessionCart))
	}
}

// PUT /cart/:product_id
func UpdateCartItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := uuid.Parse(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionCart, err := manager.Get(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		// A target of zero or less removes the line.
		if err := sessionCart.SetQuantity(c.Request.Context(), productID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(sessionCart))
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := uuid.Parse(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		sessionCart, err := manager.Get(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		if err := sessionCart.Remove(c.Request.Context(), productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(sessionCart))
	}
}

// DELETE /cart
func ClearCart(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, err := manager.Get(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		if err := sessionCart.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
