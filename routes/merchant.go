package routes

import (
	"github.com/gin-gonic/gin"
	itemControllers "github.com/jplao/little-shop-api/controllers/item"
	merchantControllers "github.com/jplao/little-shop-api/controllers/merchant"
	"github.com/jplao/little-shop-api/middleware"
	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

// SetupMerchantRoutes registers all "/merchant/*" endpoints. Requires a JWT
// with the merchant role (admins may look too).
func SetupMerchantRoutes(r *gin.Engine, db *gorm.DB) {
	merchantGroup := r.Group("/merchant")
	merchantGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleMerchant, models.RoleAdmin))
	{
		// ──────────────── Stock ────────────────
		merchantGroup.GET("/items", itemControllers.GetMerchantItems(db))            // GET /merchant/items
		merchantGroup.POST("/items", itemControllers.CreateItem(db))                 // POST /merchant/items
		merchantGroup.PUT("/items/:id", itemControllers.UpdateItem(db))              // PUT /merchant/items/:id
		merchantGroup.PUT("/items/:id/active", itemControllers.SetItemActive(db))    // PUT /merchant/items/:id/active

		// ──────────────── Orders & fulfillment ────────────────
		merchantGroup.GET("/orders", merchantControllers.GetMerchantOrders(db))              // GET /merchant/orders
		merchantGroup.GET("/orders/:orderID", merchantControllers.GetMerchantOrder(db))      // GET /merchant/orders/:orderID
		merchantGroup.GET("/orders/export", merchantControllers.ExportOrdersToExcel(db))     // GET /merchant/orders/export
		merchantGroup.PUT("/order_items/:id/fulfill", merchantControllers.FulfillOrderItem(db)) // PUT /merchant/order_items/:id/fulfill

		// ──────────────── Analytics ────────────────
		merchantGroup.GET("/stats", merchantControllers.GetMerchantStats(db))         // GET /merchant/stats
		merchantGroup.GET("/customers", merchantControllers.GetMerchantCustomers(db)) // GET /merchant/customers
	}
}
