package commands

import (
	"context"
	"errors"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
//
// The whole operation runs inside one transaction: the restaurant lookup, the
// product-price snapshot, and the order + line-item writes all see the same
// consistent state, so a concurrent price change cannot produce a total
// inconsistent with the persisted items. Any failure rolls everything back;
// no partial order or orphan line items are ever observable.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle validates the request against the catalog, prices the cart, and
// persists the new pending order atomically. Returns the persisted order with
// its resolved line items.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValidationError([]errs.FieldViolation{
				{Field: "restaurantId", Message: "the restaurantId does not exist"},
			})
		}
		return nil, err
	}

	products, err := resolveProducts(ctx, uow.ProductRepository(), cmd.Products())
	if err != nil {
		return nil, err
	}

	violations := checkAddress(cmd.Address())
	violations = append(violations, validateCart(cmd.Products(), products, rest.ID())...)
	if len(violations) > 0 {
		return nil, errs.NewValidationError(violations)
	}

	items, err := buildLineItems(cmd.Products(), products)
	if err != nil {
		return nil, err
	}

	quote, err := h.pricer.Quote(items, rest.ShippingCost())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		rest.ID(),
		cmd.Address(),
		items,
		quote.ShippingCost,
		quote.Total,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
