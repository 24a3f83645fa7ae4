package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// userCart finds the caller's cart, creating it for accounts that predate
// cart-on-register.
func userCart(db *gorm.DB, userID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	return cart, err
}

// GET /cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		cart, err := userCart(db, userID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if err := db.Preload("Items").First(&cart, cart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart
//
// Adds the item to the cart, or replaces the quantity when it is already
// there.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// The item must exist and be purchasable
		var item models.Item
		if err := db.Where("active = ?", true).First(&item, input.ItemID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate item"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Item does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		if item.Inventory < input.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough inventory for " + item.Name})
			return
		}

		cart, err := userCart(db, userID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var line models.CartItem
		err = db.Where("cart_id = ? AND item_id = ?", cart.CartID, input.ItemID).First(&line).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
			line = models.CartItem{
				CartID:   cart.CartID,
				ItemID:   item.ID,
				Quantity: input.Quantity,
				AddedAt:  time.Now(),
			}
			if err := db.Create(&line).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
		} else {
			if err := db.Model(&line).Update("quantity", input.Quantity).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		itemID := c.Param("item_id")

		cart, err := userCart(db, userID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ? AND item_id = ?", cart.CartID, itemID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		cart, err := userCart(db, userID.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
