package order_test

import (
	"testing"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, quantity int, unitPrice float64) order.LineItem {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func mustPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Calle Betis 1", []order.LineItem{mustLineItem(t, 2, 4.0)},
		2.5, 10.5, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	createdAt := time.Now().UTC()
	items := []order.LineItem{mustLineItem(t, 2, 4.0)}

	o, err := order.NewOrder(id, customerID, restaurantID, "Calle Betis 1", items, 2.5, 10.5, createdAt)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.True(t, id.IsEqual(o.ID()))
	assert.True(t, customerID.IsEqual(o.CustomerID()))
	assert.True(t, restaurantID.IsEqual(o.RestaurantID()))
	assert.Equal(t, "Calle Betis 1", o.Address())
	assert.InDelta(t, 2.5, o.ShippingCost(), 0.001)
	assert.InDelta(t, 10.5, o.Price(), 0.001)
	assert.Equal(t, createdAt, o.CreatedAt())

	assert.Equal(t, order.StatusPending, o.Status())
	assert.True(t, o.IsPending())
	assert.Nil(t, o.StartedAt())
	assert.Nil(t, o.SentAt())
	assert.Nil(t, o.DeliveredAt())
}

func TestNewOrder_InvalidInput(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, 2, 4.0)}
	createdAt := time.Now().UTC()

	t.Run("empty address", func(t *testing.T) {
		_, err := order.NewOrder(id, customerID, restaurantID, "", items, 2.5, 10.5, createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no line items", func(t *testing.T) {
		_, err := order.NewOrder(id, customerID, restaurantID, "Calle Betis 1", nil, 2.5, 10.5, createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed line item", func(t *testing.T) {
		_, err := order.NewOrder(
			id, customerID, restaurantID, "Calle Betis 1",
			[]order.LineItem{{}}, 2.5, 10.5, createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := order.NewOrder(id, customerID, restaurantID, "Calle Betis 1", items, 2.5, -1, createdAt)

		require.Error(t, err)
	})

	t.Run("zero-value customer id", func(t *testing.T) {
		_, err := order.NewOrder(id, kernel.UUID{}, restaurantID, "Calle Betis 1", items, 2.5, 10.5, createdAt)

		require.Error(t, err)
	})
}

func TestOrder_LifecycleTransitions(t *testing.T) {
	o := mustPendingOrder(t)
	startedAt := time.Now().UTC()
	sentAt := startedAt.Add(10 * time.Minute)
	deliveredAt := startedAt.Add(30 * time.Minute)

	require.NoError(t, o.Confirm(startedAt))
	assert.Equal(t, order.StatusInProcess, o.Status())
	assert.False(t, o.IsPending())
	require.NotNil(t, o.StartedAt())
	assert.Equal(t, startedAt, *o.StartedAt())

	require.NoError(t, o.Send(sentAt))
	assert.Equal(t, order.StatusSent, o.Status())

	require.NoError(t, o.Deliver(deliveredAt))
	assert.Equal(t, order.StatusDelivered, o.Status())
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, deliveredAt, *o.DeliveredAt())
}

func TestOrder_TransitionGuards(t *testing.T) {
	now := time.Now().UTC()

	t.Run("confirm twice", func(t *testing.T) {
		o := mustPendingOrder(t)
		require.NoError(t, o.Confirm(now))

		err := o.Confirm(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("send before confirm", func(t *testing.T) {
		o := mustPendingOrder(t)

		err := o.Send(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("send twice", func(t *testing.T) {
		o := mustPendingOrder(t)
		require.NoError(t, o.Confirm(now))
		require.NoError(t, o.Send(now))

		err := o.Send(now)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("deliver before send", func(t *testing.T) {
		o := mustPendingOrder(t)
		require.NoError(t, o.Confirm(now))

		err := o.Deliver(now)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("deliver twice", func(t *testing.T) {
		o := mustPendingOrder(t)
		require.NoError(t, o.Confirm(now))
		require.NoError(t, o.Send(now))
		require.NoError(t, o.Deliver(now))

		err := o.Deliver(now)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_Revise(t *testing.T) {
	t.Run("replaces address, items and pricing", func(t *testing.T) {
		o := mustPendingOrder(t)
		newItems := []order.LineItem{mustLineItem(t, 1, 12.0)}

		err := o.Revise("Calle Sierpes 99", newItems, 0, 12.0)

		require.NoError(t, err)
		assert.Equal(t, "Calle Sierpes 99", o.Address())
		require.Len(t, o.Items(), 1)
		assert.InDelta(t, 0.0, o.ShippingCost(), 0.001)
		assert.InDelta(t, 12.0, o.Price(), 0.001)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("rejected once the order is started", func(t *testing.T) {
		o := mustPendingOrder(t)
		require.NoError(t, o.Confirm(time.Now().UTC()))

		err := o.Revise("Calle Sierpes 99", []order.LineItem{mustLineItem(t, 1, 12.0)}, 0, 12.0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects an empty item set", func(t *testing.T) {
		o := mustPendingOrder(t)

		err := o.Revise("Calle Sierpes 99", nil, 0, 12.0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	items := []order.LineItem{mustLineItem(t, 2, 4.0)}
	createdAt := time.Now().UTC().Add(-time.Hour)
	startedAt := createdAt.Add(5 * time.Minute)
	sentAt := createdAt.Add(15 * time.Minute)

	t.Run("restores a sent order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, customerID, restaurantID, "Calle Betis 1", items,
			2.5, 10.5, createdAt, &startedAt, &sentAt, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusSent, o.Status())
		assert.False(t, o.IsPending())
	})

	t.Run("rejects sent without started", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, customerID, restaurantID, "Calle Betis 1", items,
			2.5, 10.5, createdAt, nil, &sentAt, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects delivered without sent", func(t *testing.T) {
		deliveredAt := createdAt.Add(30 * time.Minute)

		_, err := order.RestoreOrder(
			id, customerID, restaurantID, "Calle Betis 1", items,
			2.5, 10.5, createdAt, &startedAt, nil, &deliveredAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	o := mustPendingOrder(t)

	items := o.Items()
	items[0] = order.LineItem{}

	require.Len(t, o.Items(), 1)
	assert.NoError(t, o.Items()[0].Validate())
}

func TestOrder_ZeroValueFailsValidation(t *testing.T) {
	var o order.Order

	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.Error(t, (*order.Order)(nil).Validate())
}
