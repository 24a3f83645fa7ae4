package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/jplao/little-shop-api/controllers/admin"
	orderControllers "github.com/jplao/little-shop-api/controllers/order"
	"github.com/jplao/little-shop-api/middleware"
	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		// ──────────────── Accounts ────────────────
		adminGroup.GET("/users", adminController.GetAllUsers(db))                // GET /admin/users
		adminGroup.GET("/users/export.csv", adminController.ExportUsersCSV(db))  // GET /admin/users/export.csv
		adminGroup.PUT("/users/:id/active", adminController.SetUserActive(db))   // PUT /admin/users/:id/active
		adminGroup.PUT("/users/:id/role", adminController.UpdateUserRole(db))    // PUT /admin/users/:id/role

		// ──────────────── Orders ────────────────
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db)) // PUT /admin/orders/:orderID/status

		// ──────────────── Leaderboards ────────────────
		boards := adminGroup.Group("/leaderboards")
		{
			boards.GET("/top-merchants", adminController.TopMerchants(db))         // GET /admin/leaderboards/top-merchants
			boards.GET("/popular-merchants", adminController.PopularMerchants(db)) // GET /admin/leaderboards/popular-merchants
			boards.GET("/fastest-merchants", adminController.FastestMerchants(db)) // GET /admin/leaderboards/fastest-merchants
			boards.GET("/slowest-merchants", adminController.SlowestMerchants(db)) // GET /admin/leaderboards/slowest-merchants
		}
	}
}
