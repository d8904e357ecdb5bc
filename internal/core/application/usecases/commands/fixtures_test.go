package commands_test

import (
	"testing"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

func mustRestaurant(t *testing.T, ownerID kernel.UUID, shippingCost float64) *restaurant.Restaurant {
	t.Helper()
	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), ownerID, "Casa Felix", shippingCost)
	require.NoError(t, err)
	return rest
}

func mustProduct(t *testing.T, restaurantID kernel.UUID, price float64, available bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), restaurantID, "Paella", price, available)
	require.NoError(t, err)
	return p
}

func mustLineItem(t *testing.T, productID kernel.UUID, quantity int, unitPrice float64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

// pendingOrder builds an order that has not been started yet.
func pendingOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item := mustLineItem(t, kernel.NewUUID(), 2, 4.0)
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, restaurantID,
		"Calle Betis 1", []order.LineItem{item},
		2.5, 10.5, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

// orderAtStage rebuilds an order with the given lifecycle timestamps set.
func orderAtStage(t *testing.T, customerID, restaurantID kernel.UUID, startedAt, sentAt, deliveredAt *time.Time) *order.Order {
	t.Helper()
	item := mustLineItem(t, kernel.NewUUID(), 2, 4.0)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, restaurantID,
		"Calle Betis 1", []order.LineItem{item},
		2.5, 10.5, time.Now().UTC().Add(-time.Hour),
		startedAt, sentAt, deliveredAt,
	)
	require.NoError(t, err)
	return o
}

func timePtr(v time.Time) *time.Time { return &v }
