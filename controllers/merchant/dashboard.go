package merchantControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/models"
	"github.com/jplao/little-shop-api/queries"
	"gorm.io/gorm"
)

// GetMerchantOrders lists orders containing the merchant's items, optionally
// filtered by ?status=.
// GET /merchant/orders
func GetMerchantOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		status := models.OrderStatus(c.Query("status"))
		orders, err := queries.MerchantOrders(db, userID.(uint), status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetMerchantOrder shows one order, but only to a merchant who actually sold
// something in it. Everyone else gets the 404 a missing order would produce.
// GET /merchant/orders/:orderID
func GetMerchantOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		sold, err := queries.MerchantForOrder(db, userID.(uint), uint(orderID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if !sold {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Preload("Items.Item").Preload("Address").
			First(&order, orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetMerchantStats assembles the dashboard numbers: totals, top shipping
// destinations, top buyers, the most active buyer and the biggest order.
// GET /merchant/stats
func GetMerchantStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		merchantID := userID.(uint)

		totalSold, err := queries.TotalItemsSold(db, merchantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		totalInventory, err := queries.TotalInventory(db, merchantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		topStates, err := queries.TopShippingStates(db, merchantID, 3)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		topCities, err := queries.TopShippingCities(db, merchantID, 3)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		topBuyers, err := queries.TopBuyers(db, merchantID, 3)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		topActiveUser, err := queries.TopActiveUser(db, merchantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		biggestOrder, err := queries.BiggestOrder(db, merchantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_items_sold":    totalSold,
			"total_inventory":     totalInventory,
			"top_shipping_states": topStates,
			"top_shipping_cities": topCities,
			"top_buyers":          topBuyers,
			"top_active_user":     topActiveUser,
			"biggest_order":       biggestOrder,
		})
	}
}

// GetMerchantCustomers returns the emails of everyone who has bought from
// the merchant, and of active users who never have (for outreach mails).
// GET /merchant/customers
func GetMerchantCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		merchantID := userID.(uint)

		previous, err := queries.PreviousBuyers(db, merchantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		never, err := queries.NeverOrdered(db, merchantID, previous)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"previous_buyers": previous,
			"never_ordered":   never,
		})
	}
}

// FulfillOrderItem marks one of the merchant's line items fulfilled. The
// row's updated_at advances here, which is what the fulfillment-speed
// rankings measure.
// PUT /merchant/order_items/:id/fulfill
func FulfillOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order item ID"})
			return
		}

		var line models.OrderItem
		if err := db.
			Joins("JOIN items ON items.id = order_items.item_id").
			Where("order_items.id = ? AND items.user_id = ?", id, userID).
			First(&line).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}

		if line.Fulfilled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order item already fulfilled"})
			return
		}

		var order models.Order
		if err := db.First(&order, line.OrderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fulfill order item"})
			return
		}
		if order.Status == models.OrderStatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is cancelled"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&line).Update("fulfilled", true).Error; err != nil {
				return err
			}

			// Once every line is fulfilled the order is packaged
			var unfulfilled int64
			if err := tx.Model(&models.OrderItem{}).
				Where("order_id = ? AND fulfilled = ?", line.OrderID, false).
				Count(&unfulfilled).Error; err != nil {
				return err
			}
			if unfulfilled == 0 {
				return tx.Model(&order).Update("status", models.OrderStatusPackaged).Error
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fulfill order item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order item fulfilled"})
	}
}
