// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read denormalized rows
// straight from the database for optimal read performance.
package queries

import (
	"context"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemResponse represents one line of an order as stored, with the unit
// price snapshotted at ordering time.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
}

// OrderResponse is the read model for a single order. Status is derived from
// the lifecycle timestamps, never stored.
type OrderResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	Address        string
	Price          float64
	ShippingCost   float64
	Status         order.Status
	CreatedAt      time.Time
	StartedAt      *time.Time
	SentAt         *time.Time
	DeliveredAt    *time.Time
	Items          []OrderItemResponse
}

// orderColumns is the SELECT list shared by every order read. The restaurant
// name rides along via a join so list responses can show it without another
// round trip.
const orderColumns = `
	o.id,
	o.customer_id,
	o.restaurant_id,
	r.name,
	o.address,
	o.price,
	o.shipping_cost,
	o.created_at,
	o.started_at,
	o.sent_at,
	o.delivered_at
`

// scanOrders drains rows produced by a SELECT over orderColumns into read
// models, deriving the status of each order from its timestamps.
func scanOrders(tx *gorm.DB) ([]OrderResponse, error) {
	sqlRows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	orders := make([]OrderResponse, 0)

	for sqlRows.Next() {
		var resp OrderResponse
		var id, customerID, restaurantID uuid.UUID

		err = sqlRows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&resp.RestaurantName,
			&resp.Address,
			&resp.Price,
			&resp.ShippingCost,
			&resp.CreatedAt,
			&resp.StartedAt,
			&resp.SentAt,
			&resp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}

		resp.Status = order.StatusFromTimestamps(resp.StartedAt, resp.SentAt, resp.DeliveredAt)
		resp.Items = make([]OrderItemResponse, 0)
		orders = append(orders, resp)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the line items of every order in the slice with a single
// query and distributes them by order id.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unit_price
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY order_id, product_id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID uuid.UUID
		var item OrderItemResponse

		if err = rows.Scan(&orderID, &productID, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if item.ProductID, idErr = kernel.UUIDFromBytes(productID[:]); idErr != nil {
			return idErr
		}

		if i, ok := index[oid]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

// restaurantOwner fetches the owner of a restaurant for visibility checks.
// Returns sql.ErrNoRows when the restaurant does not exist.
func restaurantOwner(ctx context.Context, db *gorm.DB, restaurantID kernel.UUID) (kernel.UUID, error) {
	var ownerID uuid.UUID

	row := db.WithContext(ctx).Raw(`
		SELECT owner_id FROM restaurants WHERE id = ?
	`, restaurantID.Bytes()).Row()
	if err := row.Scan(&ownerID); err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(ownerID[:])
}
