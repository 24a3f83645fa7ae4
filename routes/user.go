package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/jplao/little-shop-api/controllers/cart"
	orderControllers "github.com/jplao/little-shop-api/controllers/order"
	userControllers "github.com/jplao/little-shop-api/controllers/user"
	"github.com/jplao/little-shop-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all logged-in endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Profile ────────────────
	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.ValidateToken)
	{
		profileGroup.GET("/", userControllers.GetProfile(db))   // GET /profile
		profileGroup.PUT("/", userControllers.UpdateUser(db))   // PUT /profile

		addressGroup := profileGroup.Group("/addresses")
		{
			addressGroup.GET("/", userControllers.ListAddresses(db))                  // GET /profile/addresses
			addressGroup.POST("/", userControllers.CreateAddress(db))                 // POST /profile/addresses
			addressGroup.PUT("/:id", userControllers.UpdateAddress(db))               // PUT /profile/addresses/:id
			addressGroup.PUT("/:id/default", userControllers.SetDefaultAddress(db))   // PUT /profile/addresses/:id/default
			addressGroup.DELETE("/:id", userControllers.DeactivateAddress(db))        // DELETE /profile/addresses/:id
		}
	}

	// ──────────────── Other users' profiles (owner or admin only) ────────────────
	// OptionalToken instead of ValidateToken: unauthorized callers get the
	// handler's uniform 404, never a 401 that confirms the profile exists.
	usersGroup := r.Group("/users")
	usersGroup.Use(middleware.OptionalToken)
	{
		usersGroup.GET("/:id", userControllers.GetUserProfile(db)) // GET /users/:id
	}

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetUserCart(db))               // GET /cart
		cartGroup.POST("/", cartControllers.UpdateCartItem(db))           // POST /cart
		cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db)) // DELETE /cart/:item_id
		cartGroup.DELETE("/", cartControllers.ClearUserCart(db))          // DELETE /cart
	}

	// ──────────────── Orders ────────────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/", orderControllers.CheckoutHandler(db))                // POST /orders
		orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))            // GET /orders
		orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))     // GET /orders/:orderID
		orderGroup.PUT("/:orderID/cancel", orderControllers.CancelOrderHandler(db)) // PUT /orders/:orderID/cancel
	}
}
