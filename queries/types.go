// Package queries holds the read-only reporting queries over orders, items
// and order_items. Every function takes the *gorm.DB it should run against
// and returns empty results, not errors, when no rows qualify.
//
// Unless a function says otherwise, sales aggregates only count fulfilled
// line items belonging to non-cancelled orders.
package queries

// TopBuyer is an active buyer ranked by total spend with one merchant.
type TopBuyer struct {
	UserID     uint    `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	TotalSpent float64 `json:"total_spent"`
}

// ActiveUser is a buyer ranked by how many orders they placed with a merchant.
type ActiveUser struct {
	UserID     uint   `json:"user_id"`
	Name       string `json:"name"`
	OrderCount int64  `json:"order_count"`
}

// OrderVolume is an order ranked by its summed line-item quantity.
type OrderVolume struct {
	OrderID       uint  `json:"order_id"`
	TotalQuantity int64 `json:"total_quantity"`
}

// ShippingLocation is a state or city ranked by fulfilled shipments there.
type ShippingLocation struct {
	Location      string `json:"location"`
	ShipmentCount int64  `json:"shipment_count"`
}

// MerchantRevenue is a seller ranked by total earned.
type MerchantRevenue struct {
	UserID      uint    `json:"user_id"`
	Name        string  `json:"name"`
	TotalEarned float64 `json:"total_earned"`
}

// MerchantPopularity is a seller ranked by fulfilled line-item count.
type MerchantPopularity struct {
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	ItemCount int64  `json:"item_count"`
}

// MerchantSpeed is a seller ranked by average fulfillment latency in seconds.
// Unfulfilled line items count as unfulfilledSentinelSeconds.
type MerchantSpeed struct {
	UserID     uint    `json:"user_id"`
	Name       string  `json:"name"`
	AvgSeconds float64 `json:"avg_seconds"`
}
