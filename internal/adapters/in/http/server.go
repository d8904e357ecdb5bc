// Package http exposes the order lifecycle over a REST API built on Echo.
// Route handlers translate requests into commands and queries, run them, and
// render the results; all authorization beyond role gating lives in the
// application layer.
package http

import (
	"fmt"
	"net/http"
	"time"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	sendOrderHandler    commands.SendOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getAnalyticsHandler        queries.GetRestaurantAnalyticsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getAnalyticsHandler queries.GetRestaurantAnalyticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		confirmOrderHandler:        confirmOrderHandler,
		sendOrderHandler:           sendOrderHandler,
		deliverOrderHandler:        deliverOrderHandler,
		getOrderHandler:            getOrderHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		getAnalyticsHandler:        getAnalyticsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the Echo instance. Every order and
// restaurant route requires authentication; customers manage their orders and
// owners drive lifecycles.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)

	auth := AuthMiddleware(jwtSecret)

	orders := e.Group("/orders", auth)
	orders.POST("", s.CreateOrder, RequireRole(RoleCustomer))
	orders.GET("", s.GetCustomerOrders, RequireRole(RoleCustomer))
	orders.GET("/:orderId", s.GetOrder)
	orders.PUT("/:orderId", s.UpdateOrder, RequireRole(RoleCustomer))
	orders.DELETE("/:orderId", s.DeleteOrder, RequireRole(RoleCustomer))
	orders.PATCH("/:orderId/confirm", s.ConfirmOrder, RequireRole(RoleOwner))
	orders.PATCH("/:orderId/send", s.SendOrder, RequireRole(RoleOwner))
	orders.PATCH("/:orderId/deliver", s.DeliverOrder, RequireRole(RoleOwner))

	restaurants := e.Group("/restaurants", auth, RequireRole(RoleOwner))
	restaurants.GET("/:restaurantId/orders", s.GetRestaurantOrders)
	restaurants.GET("/:restaurantId/analytics", s.GetRestaurantAnalytics)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(c echo.Context) error {
	customerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	restaurantID, idErr := kernel.UUIDFromString(req.RestaurantID)
	if idErr != nil {
		return writeError(c, errs.NewValidationError([]errs.FieldViolation{
			{Field: "restaurantId", Message: "must be a valid UUID"},
		}))
	}

	lines, violations := parseProductLines(req.Products)
	if len(violations) > 0 {
		return writeError(c, errs.NewValidationError(violations))
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, restaurantID, req.Address, lines)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetCustomerOrders handles GET /orders - lists the caller's orders.
// Supports the same optional status, from, and to query parameters as the
// restaurant listing.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	customerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	from, violation := parseDateParam(c, "from")
	if violation != nil {
		return writeError(c, errs.NewValidationError([]errs.FieldViolation{*violation}))
	}
	to, violation := parseDateParam(c, "to")
	if violation != nil {
		return writeError(c, errs.NewValidationError([]errs.FieldViolation{*violation}))
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, c.QueryParam("status"), from, to)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// GetOrder handles GET /orders/:orderId - retrieves one order. Customers see
// their own orders, owners see orders placed at their restaurant.
func (s *Server) GetOrder(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromReadModel(resp))
}

// UpdateOrder handles PUT /orders/:orderId - revises a pending order.
func (s *Server) UpdateOrder(c echo.Context) error {
	customerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateOrderRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	lines, violations := parseProductLines(req.Products)
	if len(violations) > 0 {
		return writeError(c, errs.NewValidationError(violations))
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, customerID, req.Address, lines)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// DeleteOrder handles DELETE /orders/:orderId - removes a pending order.
func (s *Server) DeleteOrder(c echo.Context) error {
	customerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, customerID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles PATCH /orders/:orderId/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, ownerID)
	if err != nil {
		return writeError(c, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromAggregate(confirmed))
}

// SendOrder handles PATCH /orders/:orderId/send.
func (s *Server) SendOrder(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSendOrderCommand(orderID, ownerID)
	if err != nil {
		return writeError(c, err)
	}

	sent, err := s.sendOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromAggregate(sent))
}

// DeliverOrder handles PATCH /orders/:orderId/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, ownerID)
	if err != nil {
		return writeError(c, err)
	}

	delivered, err := s.deliverOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromAggregate(delivered))
}

// GetRestaurantOrders handles GET /restaurants/:restaurantId/orders.
// Supports optional status, from, and to query parameters; from and to are
// dates (YYYY-MM-DD), with to covering the whole named day.
func (s *Server) GetRestaurantOrders(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	restaurantID, err := parseRestaurantID(c)
	if err != nil {
		return writeError(c, err)
	}

	from, violation := parseDateParam(c, "from")
	if violation != nil {
		return writeError(c, errs.NewValidationError([]errs.FieldViolation{*violation}))
	}
	to, violation := parseDateParam(c, "to")
	if violation != nil {
		return writeError(c, errs.NewValidationError([]errs.FieldViolation{*violation}))
	}

	query, err := queries.NewGetRestaurantOrdersQuery(
		restaurantID, ownerID, c.QueryParam("status"), from, to)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// GetRestaurantAnalytics handles GET /restaurants/:restaurantId/analytics.
func (s *Server) GetRestaurantAnalytics(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	restaurantID, err := parseRestaurantID(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetRestaurantAnalyticsQuery(restaurantID, ownerID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getAnalyticsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, AnalyticsResponse{
		RestaurantID:            resp.RestaurantID.String(),
		NumYesterdayOrders:      resp.NumYesterdayOrders,
		NumPendingOrders:        resp.NumPendingOrders,
		NumDeliveredTodayOrders: resp.NumDeliveredTodayOrders,
		InvoicedToday:           resp.InvoicedToday,
	})
}

func parseOrderID(c echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, errs.NewValidationError([]errs.FieldViolation{
			{Field: "orderId", Message: "must be a valid UUID"},
		})
	}
	return orderID, nil
}

func parseRestaurantID(c echo.Context) (kernel.UUID, error) {
	restaurantID, err := kernel.UUIDFromString(c.Param("restaurantId"))
	if err != nil {
		return kernel.UUID{}, errs.NewValidationError([]errs.FieldViolation{
			{Field: "restaurantId", Message: "must be a valid UUID"},
		})
	}
	return restaurantID, nil
}

// parseProductLines converts request cart lines to command product lines,
// collecting violations for malformed product ids.
func parseProductLines(reqLines []ProductLineRequest) ([]commands.ProductLine, []errs.FieldViolation) {
	lines := make([]commands.ProductLine, 0, len(reqLines))
	violations := make([]errs.FieldViolation, 0)

	for i, reqLine := range reqLines {
		productID, err := kernel.UUIDFromString(reqLine.ProductID)
		if err != nil {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("products[%d].productId", i),
				Message: "must be a valid UUID",
			})
			continue
		}
		lines = append(lines, commands.ProductLine{
			ProductID: productID,
			Quantity:  reqLine.Quantity,
		})
	}

	return lines, violations
}

// parseDateParam reads an optional YYYY-MM-DD query parameter.
func parseDateParam(c echo.Context, name string) (*time.Time, *errs.FieldViolation) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil, &errs.FieldViolation{Field: name, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &parsed, nil
}
