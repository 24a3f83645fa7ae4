package queries

import "github.com/jplao/little-shop-api/models"

func (s *QueriesTestSuite) TestMerchantOrdersDistinctAndFiltered() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	other := s.createUser("Sal", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)

	mug := s.createItem(merchant, "mug", 10, 50)
	bowl := s.createItem(merchant, "bowl", 15, 50)
	lamp := s.createItem(other, "lamp", 30, 50)

	// Two of the merchant's items in the same order: must appear once
	o1 := s.createOrder(buyer, address, models.OrderStatusPending)
	s.addLine(o1, mug, 1, 10, false)
	s.addLine(o1, bowl, 1, 15, false)

	o2 := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(o2, mug, 2, 10, true)

	// Somebody else's sale
	o3 := s.createOrder(buyer, address, models.OrderStatusPending)
	s.addLine(o3, lamp, 1, 30, false)

	orders, err := MerchantOrders(s.db, merchant.ID, "")
	s.NoError(err)
	s.Require().Len(orders, 2)

	shipped, err := MerchantOrders(s.db, merchant.ID, models.OrderStatusShipped)
	s.NoError(err)
	s.Require().Len(shipped, 1)
	s.Equal(o2.ID, shipped[0].ID)
}

func (s *QueriesTestSuite) TestMerchantForOrder() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	other := s.createUser("Sal", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)

	mug := s.createItem(merchant, "mug", 10, 50)
	lamp := s.createItem(other, "lamp", 30, 50)

	order := s.createOrder(buyer, address, models.OrderStatusPending)
	s.addLine(order, mug, 1, 10, false)

	foreign := s.createOrder(buyer, address, models.OrderStatusPending)
	s.addLine(foreign, lamp, 1, 30, false)

	sold, err := MerchantForOrder(s.db, merchant.ID, order.ID)
	s.NoError(err)
	s.True(sold)

	sold, err = MerchantForOrder(s.db, merchant.ID, foreign.ID)
	s.NoError(err)
	s.False(sold)
}

func (s *QueriesTestSuite) TestTotalItemsSoldCountsOnlyFulfilledNonCancelled() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)
	mug := s.createItem(merchant, "mug", 10, 50)

	order := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(order, mug, 2, 10, true)
	s.addLine(order, mug, 5, 10, false) // unfulfilled, never counts

	cancelled := s.createOrder(buyer, address, models.OrderStatusCancelled)
	s.addLine(cancelled, mug, 7, 10, true) // cancelled, never counts

	total, err := TotalItemsSold(s.db, merchant.ID)
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *QueriesTestSuite) TestTotalItemsSoldEmpty() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)

	total, err := TotalItemsSold(s.db, merchant.ID)
	s.NoError(err)
	s.Zero(total)
}

func (s *QueriesTestSuite) TestTotalInventoryIgnoresOrders() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	s.createItem(merchant, "mug", 10, 12)
	s.createItem(merchant, "bowl", 15, 30)
	other := s.createUser("Sal", models.RoleMerchant, true)
	s.createItem(other, "lamp", 30, 99)

	total, err := TotalInventory(s.db, merchant.ID)
	s.NoError(err)
	s.Equal(int64(42), total)
}

func (s *QueriesTestSuite) TestTopShippingStatesAndCities() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	mug := s.createItem(merchant, "mug", 10, 500)

	denver := s.createAddress(buyer, "Denver", "CO", true)
	boulder := s.createAddress(buyer, "Boulder", "CO", true)
	austin := s.createAddress(buyer, "Austin", "TX", true)
	slc := s.createAddress(buyer, "Salt Lake City", "UT", true)

	// CO gets 3 fulfilled shipments (2 Denver + 1 Boulder), TX 2, UT 1
	for i := 0; i < 2; i++ {
		o := s.createOrder(buyer, denver, models.OrderStatusShipped)
		s.addLine(o, mug, 1, 10, true)
	}
	o := s.createOrder(buyer, boulder, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)
	for i := 0; i < 2; i++ {
		o := s.createOrder(buyer, austin, models.OrderStatusShipped)
		s.addLine(o, mug, 1, 10, true)
	}
	o = s.createOrder(buyer, slc, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)

	// Never counted: unfulfilled and cancelled shipments
	o = s.createOrder(buyer, slc, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, false)
	o = s.createOrder(buyer, slc, models.OrderStatusCancelled)
	s.addLine(o, mug, 1, 10, true)

	states, err := TopShippingStates(s.db, merchant.ID, 3)
	s.NoError(err)
	s.Require().Len(states, 3)
	s.Equal("CO", states[0].Location)
	s.Equal(int64(3), states[0].ShipmentCount)
	s.Equal("TX", states[1].Location)
	s.Equal(int64(2), states[1].ShipmentCount)
	s.Equal("UT", states[2].Location)
	s.Equal(int64(1), states[2].ShipmentCount)

	cities, err := TopShippingCities(s.db, merchant.ID, 3)
	s.NoError(err)
	s.Require().Len(cities, 3)
	s.Equal("Austin", cities[0].Location)
	s.Equal(int64(2), cities[0].ShipmentCount)
	s.Equal("Denver", cities[1].Location)
	s.Equal(int64(2), cities[1].ShipmentCount)
}

func (s *QueriesTestSuite) TestTopShippingRejectsUnknownDimension() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)

	_, err := TopShipping(s.db, merchant.ID, "zip; DROP TABLE users", 3)
	s.Error(err)
}

func (s *QueriesTestSuite) TestTopActiveUser() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	frequent := s.createUser("Ann", models.RoleUser, true)
	occasional := s.createUser("Bob", models.RoleUser, true)
	banned := s.createUser("Eve", models.RoleUser, false)
	mug := s.createItem(merchant, "mug", 10, 500)

	annAddr := s.createAddress(frequent, "Denver", "CO", true)
	bobAddr := s.createAddress(occasional, "Austin", "TX", true)
	eveAddr := s.createAddress(banned, "Reno", "NV", true)

	for i := 0; i < 3; i++ {
		o := s.createOrder(frequent, annAddr, models.OrderStatusShipped)
		s.addLine(o, mug, 1, 10, true)
	}
	o := s.createOrder(occasional, bobAddr, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)

	// Inactive buyers never rank, however many orders they have
	for i := 0; i < 5; i++ {
		o := s.createOrder(banned, eveAddr, models.OrderStatusShipped)
		s.addLine(o, mug, 1, 10, true)
	}

	top, err := TopActiveUser(s.db, merchant.ID)
	s.NoError(err)
	s.Require().NotNil(top)
	s.Equal(frequent.ID, top.UserID)
	s.Equal(int64(3), top.OrderCount)
}

func (s *QueriesTestSuite) TestTopActiveUserEmpty() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)

	top, err := TopActiveUser(s.db, merchant.ID)
	s.NoError(err)
	s.Nil(top)
}

func (s *QueriesTestSuite) TestBiggestOrder() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)
	mug := s.createItem(merchant, "mug", 10, 500)
	bowl := s.createItem(merchant, "bowl", 15, 500)

	small := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(small, mug, 2, 10, true)

	big := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(big, mug, 3, 10, true)
	s.addLine(big, bowl, 4, 15, true)

	// A cancelled order with a huge quantity never wins
	huge := s.createOrder(buyer, address, models.OrderStatusCancelled)
	s.addLine(huge, mug, 100, 10, true)

	top, err := BiggestOrder(s.db, merchant.ID)
	s.NoError(err)
	s.Require().NotNil(top)
	s.Equal(big.ID, top.OrderID)
	s.Equal(int64(7), top.TotalQuantity)
}

func (s *QueriesTestSuite) TestTopBuyersScenario() {
	// Seller S sold I1 (qty 2, price 10) and I2 (qty 1, price 5) to buyer B,
	// both fulfilled: total items sold 3, top buyer spend 25.
	seller := s.createUser("Meg", models.RoleMerchant, true)
	buyer := s.createUser("Ann", models.RoleUser, true)
	address := s.createAddress(buyer, "Denver", "CO", true)
	i1 := s.createItem(seller, "mug", 10, 50)
	i2 := s.createItem(seller, "bowl", 5, 50)

	order := s.createOrder(buyer, address, models.OrderStatusShipped)
	s.addLine(order, i1, 2, 10, true)
	s.addLine(order, i2, 1, 5, true)

	total, err := TotalItemsSold(s.db, seller.ID)
	s.NoError(err)
	s.Equal(int64(3), total)

	buyers, err := TopBuyers(s.db, seller.ID, 1)
	s.NoError(err)
	s.Require().Len(buyers, 1)
	s.Equal(buyer.ID, buyers[0].UserID)
	s.InDelta(25.0, buyers[0].TotalSpent, 1e-9)
}

func (s *QueriesTestSuite) TestTopBuyersExclusions() {
	seller := s.createUser("Meg", models.RoleMerchant, true)
	active := s.createUser("Ann", models.RoleUser, true)
	inactive := s.createUser("Eve", models.RoleUser, false)
	mug := s.createItem(seller, "mug", 10, 500)

	annAddr := s.createAddress(active, "Denver", "CO", true)
	eveAddr := s.createAddress(inactive, "Reno", "NV", true)

	o := s.createOrder(active, annAddr, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)
	s.addLine(o, mug, 9, 10, false) // unfulfilled spend never counts

	o = s.createOrder(inactive, eveAddr, models.OrderStatusShipped)
	s.addLine(o, mug, 50, 10, true) // inactive buyer never ranks

	buyers, err := TopBuyers(s.db, seller.ID, 3)
	s.NoError(err)
	s.Require().Len(buyers, 1)
	s.Equal(active.ID, buyers[0].UserID)
	s.InDelta(10.0, buyers[0].TotalSpent, 1e-9)
}

func (s *QueriesTestSuite) TestPreviousBuyersDistinctEmails() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	repeat := s.createUser("Ann", models.RoleUser, true)
	once := s.createUser("Bob", models.RoleUser, true)
	inactive := s.createUser("Eve", models.RoleUser, false)
	stranger := s.createUser("Zed", models.RoleUser, true)
	_ = stranger
	mug := s.createItem(merchant, "mug", 10, 500)

	annAddr := s.createAddress(repeat, "Denver", "CO", true)
	bobAddr := s.createAddress(once, "Austin", "TX", true)
	eveAddr := s.createAddress(inactive, "Reno", "NV", true)

	for i := 0; i < 2; i++ {
		o := s.createOrder(repeat, annAddr, models.OrderStatusShipped)
		s.addLine(o, mug, 1, 10, false) // fulfillment irrelevant here
	}
	o := s.createOrder(once, bobAddr, models.OrderStatusCancelled) // cancelled still counts as "bought"
	s.addLine(o, mug, 1, 10, false)
	o = s.createOrder(inactive, eveAddr, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)

	emails, err := PreviousBuyers(s.db, merchant.ID)
	s.NoError(err)
	s.Require().Len(emails, 2)
	s.Equal([]string{repeat.Email, once.Email}, sortedCopy(emails))
}

func (s *QueriesTestSuite) TestNeverOrdered() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	bought := s.createUser("Ann", models.RoleUser, true)
	never := s.createUser("Bob", models.RoleUser, true)
	inactive := s.createUser("Eve", models.RoleUser, false)
	_ = inactive
	mug := s.createItem(merchant, "mug", 10, 500)

	annAddr := s.createAddress(bought, "Denver", "CO", true)
	o := s.createOrder(bought, annAddr, models.OrderStatusShipped)
	s.addLine(o, mug, 1, 10, true)

	previous, err := PreviousBuyers(s.db, merchant.ID)
	s.NoError(err)

	emails, err := NeverOrdered(s.db, merchant.ID, previous)
	s.NoError(err)
	s.Equal([]string{never.Email}, emails)
}

func (s *QueriesTestSuite) TestNeverOrderedEmptyPrevious() {
	merchant := s.createUser("Meg", models.RoleMerchant, true)
	a := s.createUser("Ann", models.RoleUser, true)
	b := s.createUser("Bob", models.RoleUser, true)

	emails, err := NeverOrdered(s.db, merchant.ID, nil)
	s.NoError(err)
	s.Require().Len(emails, 2)
	s.Contains(emails, a.Email)
	s.Contains(emails, b.Email)
	s.NotContains(emails, merchant.Email)
}
