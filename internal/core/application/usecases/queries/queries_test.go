package queries_test

import (
	"testing"
	"time"

	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_ZeroIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetCustomerOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetCustomerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}

func TestNewGetRestaurantOrdersQuery_Valid(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetRestaurantOrdersQuery(
		kernel.NewUUID(), kernel.NewUUID(), "pending", &from, &to)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.StatusPending, query.Status())
	assert.Equal(t, from, *query.From())
	assert.Equal(t, to, *query.To())
}

func TestNewGetRestaurantOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetRestaurantOrdersQuery(
		kernel.NewUUID(), kernel.NewUUID(), "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, order.StatusUnknown, query.Status())
	assert.Nil(t, query.From())
	assert.Nil(t, query.To())
}

func TestNewGetRestaurantOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetRestaurantOrdersQuery(
		kernel.NewUUID(), kernel.NewUUID(), "cancelled", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
}

func TestGetRestaurantOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRestaurantOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func TestNewGetRestaurantAnalyticsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetRestaurantAnalyticsQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetRestaurantAnalyticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRestaurantAnalyticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRestaurantAnalyticsQueryIsNotConstructed)
}

func TestNewGetPendingBacklogQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPendingBacklogQuery(15 * time.Minute)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 15*time.Minute, query.OlderThan())
}

func TestNewGetPendingBacklogQuery_NegativeAge(t *testing.T) {
	_, err := queries.NewGetPendingBacklogQuery(-time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetPendingBacklogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingBacklogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingBacklogQueryIsNotConstructed)
}

func TestNewGetCustomerOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), "cancelled", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
}
