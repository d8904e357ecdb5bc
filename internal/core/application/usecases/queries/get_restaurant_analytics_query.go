package queries

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var (
	ErrGetRestaurantAnalyticsQueryIsNotConstructed = errors.New(
		"GetRestaurantAnalyticsQuery must be created via NewGetRestaurantAnalyticsQuery constructor",
	)
)

// GetRestaurantAnalyticsQuery computes the owner dashboard figures for one
// restaurant.
type GetRestaurantAnalyticsQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantAnalyticsQuery creates a query for a restaurant's dashboard
// figures on behalf of ownerID.
func NewGetRestaurantAnalyticsQuery(restaurantID, ownerID kernel.UUID) (GetRestaurantAnalyticsQuery, error) {
	q := GetRestaurantAnalyticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setRestaurantID(restaurantID),
		q.setOwnerID(ownerID),
	); err != nil {
		return GetRestaurantAnalyticsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantAnalyticsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant being analyzed.
func (q GetRestaurantAnalyticsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q GetRestaurantAnalyticsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetRestaurantAnalyticsQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	q.restaurantID = restaurantID
	return nil
}

func (q *GetRestaurantAnalyticsQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	q.ownerID = ownerID
	return nil
}

// GetRestaurantAnalyticsQueryResponse holds the four dashboard aggregates.
// Each figure is computed independently; together they describe yesterday's
// volume, the current backlog, and today's deliveries and revenue.
type GetRestaurantAnalyticsQueryResponse struct {
	RestaurantID kernel.UUID

	// NumYesterdayOrders counts orders created during the previous calendar
	// day, whatever their current status.
	NumYesterdayOrders int

	// NumPendingOrders counts orders not yet confirmed, regardless of age.
	NumPendingOrders int

	// NumDeliveredTodayOrders counts orders whose delivery completed today.
	NumDeliveredTodayOrders int

	// InvoicedToday sums the total price of orders created today, delivered
	// or not.
	InvoicedToday float64
}
