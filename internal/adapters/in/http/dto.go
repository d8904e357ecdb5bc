package http

import (
	"time"

	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/domain/model/order"
)

// ProductLineRequest is one cart line in a create/update order request.
// Unit prices are never accepted from clients; they are snapshotted from the
// live catalog server-side.
type ProductLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	RestaurantID string               `json:"restaurantId"`
	Address      string               `json:"address"`
	Products     []ProductLineRequest `json:"products"`
}

// UpdateOrderRequest is the body of PUT /orders/:orderId. The restaurant of
// an order can never change.
type UpdateOrderRequest struct {
	Address  string               `json:"address"`
	Products []ProductLineRequest `json:"products"`
}

// OrderItemResponse is one order line in a response body.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// OrderResponse is the JSON rendering of an order.
type OrderResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customerId"`
	RestaurantID   string              `json:"restaurantId"`
	RestaurantName string              `json:"restaurantName,omitempty"`
	Address        string              `json:"address"`
	Price          float64             `json:"price"`
	ShippingCost   float64             `json:"shippingCost"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	StartedAt      *time.Time          `json:"startedAt"`
	SentAt         *time.Time          `json:"sentAt"`
	DeliveredAt    *time.Time          `json:"deliveredAt"`
	Products       []OrderItemResponse `json:"products"`
}

// AnalyticsResponse is the JSON rendering of a restaurant's dashboard
// figures.
type AnalyticsResponse struct {
	RestaurantID            string  `json:"restaurantId"`
	NumYesterdayOrders      int     `json:"numYesterdayOrders"`
	NumPendingOrders        int     `json:"numPendingOrders"`
	NumDeliveredTodayOrders int     `json:"numDeliveredTodayOrders"`
	InvoicedToday           float64 `json:"invoicedToday"`
}

// orderResponseFromAggregate renders a freshly written aggregate. The
// restaurant name is not loaded on the write path, so it is omitted.
func orderResponseFromAggregate(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		RestaurantID: o.RestaurantID().String(),
		Address:      o.Address(),
		Price:        o.Price(),
		ShippingCost: o.ShippingCost(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		StartedAt:    o.StartedAt(),
		SentAt:       o.SentAt(),
		DeliveredAt:  o.DeliveredAt(),
		Products:     items,
	}
}

// orderResponseFromReadModel renders a query-side read model.
func orderResponseFromReadModel(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return OrderResponse{
		ID:             o.ID.String(),
		CustomerID:     o.CustomerID.String(),
		RestaurantID:   o.RestaurantID.String(),
		RestaurantName: o.RestaurantName,
		Address:        o.Address,
		Price:          o.Price,
		ShippingCost:   o.ShippingCost,
		Status:         o.Status.String(),
		CreatedAt:      o.CreatedAt,
		StartedAt:      o.StartedAt,
		SentAt:         o.SentAt,
		DeliveredAt:    o.DeliveredAt,
		Products:       items,
	}
}

func orderResponsesFromReadModels(orders []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponseFromReadModel(o))
	}
	return out
}
