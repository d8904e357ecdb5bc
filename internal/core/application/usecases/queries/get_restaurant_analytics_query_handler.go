package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliverus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantAnalyticsQueryHandler computes owner dashboard aggregates with
// a single scan over the restaurant's orders.
type GetRestaurantAnalyticsQueryHandler struct {
	db *gorm.DB

	// now is swappable so tests can pin the day boundaries.
	now func() time.Time
}

// NewGetRestaurantAnalyticsQueryHandler creates a handler for restaurant
// analytics queries.
func NewGetRestaurantAnalyticsQueryHandler(db *gorm.DB) GetRestaurantAnalyticsQueryHandler {
	return GetRestaurantAnalyticsQueryHandler{db: db, now: time.Now}
}

// NewGetRestaurantAnalyticsQueryHandlerWithClock creates a handler whose day
// boundaries derive from the given clock instead of wall time.
func NewGetRestaurantAnalyticsQueryHandlerWithClock(db *gorm.DB, now func() time.Time) GetRestaurantAnalyticsQueryHandler {
	return GetRestaurantAnalyticsQueryHandler{db: db, now: now}
}

// Handle verifies ownership and computes the four dashboard figures. Day
// boundaries are taken in UTC: "today" starts at 00:00 UTC of the current
// day and "yesterday" covers the 24 hours before that. A restaurant with no
// orders reports zeros.
func (h GetRestaurantAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantAnalyticsQuery,
) (GetRestaurantAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	ownerID, err := restaurantOwner(ctx, h.db, query.RestaurantID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRestaurantAnalyticsQueryResponse{},
				errs.NewObjectNotFoundError("restaurantId", query.RestaurantID())
		}
		return GetRestaurantAnalyticsQueryResponse{}, err
	}
	if !ownerID.IsEqual(query.OwnerID()) {
		return GetRestaurantAnalyticsQueryResponse{},
			errs.NewNotPermittedError("restaurant", "this entity does not belong to you")
	}

	now := h.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	resp := GetRestaurantAnalyticsQueryResponse{RestaurantID: query.RestaurantID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at >= ? AND created_at < ?),
			COUNT(*) FILTER (WHERE started_at IS NULL),
			COUNT(*) FILTER (WHERE delivered_at >= ?),
			COALESCE(SUM(price) FILTER (WHERE created_at >= ?), 0)
		FROM orders
		WHERE restaurant_id = ?
	`, yesterdayStart, todayStart, todayStart, todayStart, query.RestaurantID().Bytes()).Row()

	err = row.Scan(
		&resp.NumYesterdayOrders,
		&resp.NumPendingOrders,
		&resp.NumDeliveredTodayOrders,
		&resp.InvoicedToday,
	)
	if err != nil {
		return GetRestaurantAnalyticsQueryResponse{}, err
	}

	return resp, nil
}
