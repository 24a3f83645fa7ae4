package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jplao/little-shop-api/models"
	"github.com/jplao/little-shop-api/queries"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------
type CheckoutRequest struct {
	// AddressID is optional; when zero the buyer's default address is used.
	AddressID uint `json:"address_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPackaged):
		return models.OrderStatusPackaged, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// Checkout converts the user's cart into an order shipping to the given
// address. Inventory is checked and decremented under row locks; line items
// snapshot the current item price.
func Checkout(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	addressID := req.AddressID
	if addressID == 0 {
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return nil, err
		}
		def, err := queries.DefaultAddress(db, &user)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, errors.New("no shipping address given and no default address set")
		}
		addressID = def.ID
	}

	var address models.Address
	if err := db.Where("id = ? AND user_id = ? AND active = ?", addressID, userID, true).
		First(&address).Error; err != nil {
		return nil, errors.New("shipping address not found")
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem

		for _, line := range cart.Items {
			q := tx
			if tx.Dialector.Name() != "sqlite" {
				// sqlite has no SELECT ... FOR UPDATE; its writes serialize anyway
				q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var item models.Item
			if err := q.First(&item, "id = ?", line.ItemID).Error; err != nil {
				return err
			}

			if !item.Active {
				return errors.New("item no longer available: " + item.Name)
			}
			if item.Inventory < line.Quantity {
				return errors.New("insufficient inventory for item: " + item.Name)
			}

			// Deduct stock
			item.Inventory -= line.Quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ItemID:   item.ID,
				Quantity: line.Quantity,
				Price:    item.Price, // price at purchase time
			})
		}

		order = models.Order{
			OrderRef:  generateOrderRef(),
			UserID:    userID,
			AddressID: address.ID,
			Items:     orderItems,
			Status:    models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels a pending order. Checkout deducted stock for every
// line, so every line restocks, fulfilled or not; fulfilled flags reset.
func CancelOrder(db *gorm.DB, order *models.Order) error {
	if order.Status != models.OrderStatusPending {
		return errors.New("only pending orders can be cancelled")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var lines []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&lines).Error; err != nil {
			return err
		}

		for _, line := range lines {
			if err := tx.Model(&models.Item{}).Where("id = ?", line.ItemID).
				Update("inventory", gorm.Expr("inventory + ?", line.Quantity)).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND fulfilled = ?", order.ID, true).
			Update("fulfilled", false).Error; err != nil {
			return err
		}

		return tx.Model(order).Update("status", models.OrderStatusCancelled).Error
	})
}

// -------- Handlers --------

// Place order from cart (user)
// POST /orders
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := Checkout(db, userID.(uint), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Item").
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
//
// Visible to the buyer and to admins. Everyone else gets the same 404 a
// missing order would produce.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")
		role, _ := roleVal.(models.Role)
		orderID := c.Param("orderID")

		query := db.
			Preload("Items").
			Preload("Items.Item").
			Preload("Address")
		if id, err := strconv.ParseUint(orderID, 10, 64); err == nil {
			query = query.Where("id = ?", id)
		} else {
			// Non-numeric lookups are by order reference; postgres rejects
			// comparing the integer id column against them.
			query = query.Where("order_ref = ?", orderID)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		if role != models.RoleAdmin && order.UserID != userID.(uint) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		if err := CancelOrder(db, &order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// Update order status (admin)
// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
