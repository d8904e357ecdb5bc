package order_test

import (
	"testing"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	productID := kernel.NewUUID()

	item, err := order.NewLineItem(productID, 3, 4.5)

	require.NoError(t, err)
	require.NoError(t, item.Validate())
	assert.True(t, productID.IsEqual(item.ProductID()))
	assert.Equal(t, 3, item.Quantity())
	assert.InDelta(t, 4.5, item.UnitPrice(), 0.001)
}

func TestNewLineItem_InvalidInput(t *testing.T) {
	t.Run("zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 0, 4.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), -1, 4.5)

		require.Error(t, err)
	})

	t.Run("negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 1, -0.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero-value product id", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, 1, 4.5)

		require.Error(t, err)
	})

	t.Run("free product is allowed", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), 1, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.Subtotal(), 0.001)
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	item, err := order.NewLineItem(kernel.NewUUID(), 4, 2.75)
	require.NoError(t, err)

	assert.InDelta(t, 11.0, item.Subtotal(), 0.001)
}

func TestLineItem_ZeroValueFailsValidation(t *testing.T) {
	var item order.LineItem

	err := item.Validate()

	assert.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
}
