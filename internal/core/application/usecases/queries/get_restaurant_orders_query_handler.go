package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists a restaurant's incoming orders for
// its owner.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order
// listings.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle verifies the requester owns the restaurant, then returns its orders
// newest first, narrowed by the optional status and date filters.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := restaurantOwner(ctx, h.db, query.RestaurantID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("restaurantId", query.RestaurantID())
		}
		return nil, err
	}
	if !ownerID.IsEqual(query.OwnerID()) {
		return nil, errs.NewNotPermittedError("restaurant", "this entity does not belong to you")
	}

	var filter orderFilter
	if query.Status() != order.StatusUnknown {
		filter.byStatus(query.Status())
	}
	if query.From() != nil {
		filter.byCreatedFrom(*query.From())
	}
	if query.To() != nil {
		filter.byCreatedTo(*query.To())
	}
	clause, filterArgs := filter.clause()

	args := append([]any{query.RestaurantID().Bytes()}, filterArgs...)
	orders, err := scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.restaurant_id = ?`+clause+`
		ORDER BY o.created_at DESC
	`, args...))
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
