package queries

import (
	"time"

	"github.com/jplao/little-shop-api/models"
)

func (s *QueriesTestSuite) TestTopMerchantsRanksByEarnings() {
	big := s.createUser("Meg", models.RoleMerchant, true)
	small := s.createUser("Sal", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)

	mug := s.createItem(big, "mug", 10, 500)
	lamp := s.createItem(small, "lamp", 30, 500)

	o := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(o, mug, 10, 10, true) // 100 earned
	s.addLine(o, lamp, 2, 30, true) // 60 earned

	// Excluded from every revenue metric
	s.addLine(o, mug, 50, 10, false)
	cancelled := s.createOrder(buyer, address, models.OrderStatusCancelled)
	s.addLine(cancelled, lamp, 50, 30, true)

	rows, err := TopMerchants(s.db, 3)
	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(big.ID, rows[0].UserID)
	s.InDelta(100.0, rows[0].TotalEarned, 1e-9)
	s.Equal(small.ID, rows[1].UserID)
	s.InDelta(60.0, rows[1].TotalEarned, 1e-9)
}

func (s *QueriesTestSuite) TestTopMerchantsTieBrokenByName() {
	zeta := s.createUser("Zeta", models.RoleMerchant, true)
	alpha := s.createUser("Alpha", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)

	zItem := s.createItem(zeta, "vase", 20, 500)
	aItem := s.createItem(alpha, "bowl", 20, 500)

	o := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(o, zItem, 1, 20, true)
	s.addLine(o, aItem, 1, 20, true)

	rows, err := TopMerchants(s.db, 2)
	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(alpha.ID, rows[0].UserID)
	s.Equal(zeta.ID, rows[1].UserID)
}

func (s *QueriesTestSuite) TestPopularMerchantsCountsFulfilledLines() {
	popular := s.createUser("Meg", models.RoleMerchant, true)
	quiet := s.createUser("Sal", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)

	mug := s.createItem(popular, "mug", 10, 500)
	lamp := s.createItem(quiet, "lamp", 30, 500)

	o := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)
	s.addLine(o, mug, 1, 10, true)
	s.addLine(o, mug, 1, 10, true)
	s.addLine(o, lamp, 99, 30, true) // one line, however large

	rows, err := PopularMerchants(s.db, 2)
	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(popular.ID, rows[0].UserID)
	s.Equal(int64(3), rows[0].ItemCount)
	s.Equal(quiet.ID, rows[1].UserID)
	s.Equal(int64(1), rows[1].ItemCount)
}

func (s *QueriesTestSuite) TestMerchantsBySpeed() {
	fast := s.createUser("Flash", models.RoleMerchant, true)
	slow := s.createUser("Slug", models.RoleMerchant, true)
	stuck := s.createUser("Stone", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)

	fastItem := s.createItem(fast, "mug", 10, 500)
	slowItem := s.createItem(slow, "lamp", 30, 500)
	stuckItem := s.createItem(stuck, "rock", 5, 500)

	placed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	o := s.createOrder(buyer, address, models.OrderStatusShipped)
	line := s.addLine(o, fastItem, 1, 10, true)
	s.setLineTimes(line, placed, placed.Add(1*time.Hour))

	line = s.addLine(o, slowItem, 1, 30, true)
	s.setLineTimes(line, placed, placed.Add(48*time.Hour))

	// Never fulfilled: updated_at == created_at, sentinel applies
	line = s.addLine(o, stuckItem, 1, 5, false)
	s.setLineTimes(line, placed, placed)

	fastest, err := FastestMerchants(s.db, 3)
	s.NoError(err)
	s.Require().Len(fastest, 3)
	s.Equal(fast.ID, fastest[0].UserID)
	s.InDelta(3600, fastest[0].AvgSeconds, 1)
	s.Equal(slow.ID, fastest[1].UserID)
	s.Equal(stuck.ID, fastest[2].UserID)
	s.InDelta(float64(1000000000), fastest[2].AvgSeconds, 1)

	slowest, err := SlowestMerchants(s.db, 3)
	s.NoError(err)
	s.Require().Len(slowest, 3)
	s.Equal(stuck.ID, slowest[0].UserID)
	s.Equal(slow.ID, slowest[1].UserID)
	s.Equal(fast.ID, slowest[2].UserID)
}

func (s *QueriesTestSuite) TestMerchantsBySpeedIgnoresCancelledOrders() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)
	mug := s.createItem(merchant, "mug", 10, 500)

	placed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	o := s.createOrder(buyer, address, models.OrderStatusShipped)
	line := s.addLine(o, mug, 1, 10, true)
	s.setLineTimes(line, placed, placed.Add(time.Hour))

	// A week-long fulfillment on a cancelled order must not drag the average
	cancelled := s.createOrder(buyer, address, models.OrderStatusCancelled)
	line = s.addLine(cancelled, mug, 1, 10, true)
	s.setLineTimes(line, placed, placed.Add(7*24*time.Hour))

	rows, err := FastestMerchants(s.db, 1)
	s.NoError(err)
	s.Require().Len(rows, 1)
	s.InDelta(3600, rows[0].AvgSeconds, 1)
}

func (s *QueriesTestSuite) TestLeaderboardsEmpty() {
	top, err := TopMerchants(s.db, 3)
	s.NoError(err)
	s.Empty(top)

	popular, err := PopularMerchants(s.db, 3)
	s.NoError(err)
	s.Empty(popular)

	speed, err := FastestMerchants(s.db, 3)
	s.NoError(err)
	s.Empty(speed)
}
