package queries

import (
	"context"

	"deliverus/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's order history from the
// database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, most recent first, each with its
// line items and restaurant name, narrowed by the optional status and date
// filters.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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

	args := append([]any{query.CustomerID().Bytes()}, filterArgs...)
	orders, err := scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = ?`+clause+`
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
