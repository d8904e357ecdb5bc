package queries

import (
	"context"

	"deliverus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its line items directly from
// the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order and enforces visibility: only the customer who
// placed the order or the owner of its restaurant may read it. A missing
// order reports not-found before any permission decision.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()))
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	resp := orders[0]

	if !resp.CustomerID.IsEqual(query.UserID()) {
		ownerID, ownerErr := restaurantOwner(ctx, h.db, resp.RestaurantID)
		if ownerErr != nil {
			return OrderResponse{}, ownerErr
		}
		if !ownerID.IsEqual(query.UserID()) {
			return OrderResponse{}, errs.NewNotPermittedError("order", "this entity does not belong to you")
		}
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
