package queries

import (
	"github.com/jplao/little-shop-api/models"
	"gorm.io/gorm"
)

// SpeedDirection selects whether MerchantsBySpeed ranks fastest or slowest
// sellers first.
type SpeedDirection string

const (
	SpeedFastest SpeedDirection = "ASC"
	SpeedSlowest SpeedDirection = "DESC"
)

// unfulfilledSentinelSeconds stands in for the fulfillment latency of line
// items that were never fulfilled (updated_at <= created_at). One billion
// seconds is effectively infinite, so unfulfilled work sorts last among the
// fastest and first among the slowest without any null handling.
const unfulfilledSentinelSeconds = 1000000000

// TopMerchants returns the top-n sellers by total earned (quantity * price
// summed over fulfilled, non-cancelled line items), ties broken by name.
func TopMerchants(db *gorm.DB, n int) ([]MerchantRevenue, error) {
	rows := []MerchantRevenue{}
	err := db.Model(&models.OrderItem{}).
		Select("users.id AS user_id, users.name AS name, SUM(order_items.quantity * order_items.price) AS total_earned").
		Joins("JOIN items ON items.id = order_items.item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = items.user_id").
		Where("order_items.fulfilled = ? AND orders.status <> ?", true, models.OrderStatusCancelled).
		Group("users.id, users.name").
		Order("total_earned DESC, users.name ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PopularMerchants returns the top-n sellers by count of fulfilled,
// non-cancelled line items, ties broken by name.
func PopularMerchants(db *gorm.DB, n int) ([]MerchantPopularity, error) {
	rows := []MerchantPopularity{}
	err := db.Model(&models.OrderItem{}).
		Select("users.id AS user_id, users.name AS name, COUNT(order_items.id) AS item_count").
		Joins("JOIN items ON items.id = order_items.item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = items.user_id").
		Where("order_items.fulfilled = ? AND orders.status <> ?", true, models.OrderStatusCancelled).
		Group("users.id, users.name").
		Order("item_count DESC, users.name ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FastestMerchants returns the top-n sellers by lowest average fulfillment
// latency.
func FastestMerchants(db *gorm.DB, n int) ([]MerchantSpeed, error) {
	return MerchantsBySpeed(db, n, SpeedFastest)
}

// SlowestMerchants returns the top-n sellers by highest average fulfillment
// latency.
func SlowestMerchants(db *gorm.DB, n int) ([]MerchantSpeed, error) {
	return MerchantsBySpeed(db, n, SpeedSlowest)
}

// MerchantsBySpeed ranks sellers by average fulfillment latency over line
// items of non-cancelled orders. Latency is updated_at - created_at in
// seconds when the line was fulfilled (updated_at advanced); lines never
// fulfilled count as the sentinel. Unfulfilled lines are deliberately
// included, they are what makes a slow merchant slow.
func MerchantsBySpeed(db *gorm.DB, n int, direction SpeedDirection) ([]MerchantSpeed, error) {
	if direction != SpeedFastest && direction != SpeedSlowest {
		direction = SpeedFastest
	}

	latency := fulfillmentLatencyExpr(db)

	rows := []MerchantSpeed{}
	err := db.Model(&models.OrderItem{}).
		Select("users.id AS user_id, users.name AS name, AVG(CASE WHEN order_items.updated_at > order_items.created_at THEN "+
			latency+" ELSE ? END) AS avg_seconds", unfulfilledSentinelSeconds).
		Joins("JOIN items ON items.id = order_items.item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = items.user_id").
		Where("orders.status <> ?", models.OrderStatusCancelled).
		Group("users.id, users.name").
		Order("avg_seconds " + string(direction) + ", users.name ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// fulfillmentLatencyExpr yields the SQL for updated_at - created_at in
// seconds. Postgres and sqlite (the test driver) spell this differently.
func fulfillmentLatencyExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "(strftime('%s', order_items.updated_at) - strftime('%s', order_items.created_at))"
	}
	return "EXTRACT(EPOCH FROM (order_items.updated_at - order_items.created_at))"
}
