package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jplao/little-shop-api/auth"
	itemControllers "github.com/jplao/little-shop-api/controllers/item"
	orderControllers "github.com/jplao/little-shop-api/controllers/order"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public endpoints: account creation, login,
// catalog browsing, and the merchant order feed websocket (which upgrades
// before any auth, clients subscribe read-only).
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db)) // POST /auth/register
		authGroup.POST("/login", auth.Login(db))       // POST /auth/login
	}

	// Public catalog
	r.GET("/items", itemControllers.GetItems(db))          // GET /items
	r.GET("/items/:id", itemControllers.GetItemByID(db))   // GET /items/:id
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler) // GET /ws/orders
}
