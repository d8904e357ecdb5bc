package commands

import (
	"context"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/services"
	"deliverus/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles edits to pending orders.
//
// The pending check runs against the persisted order, never against anything
// the client supplied. Repricing uses the order's own restaurant. The address
// change, the full line-item replacement, and the new price persist as one
// transaction: a failure at any step leaves the original order and its items
// untouched.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle loads the order, enforces ownership and the pending-only rule,
// revalidates the cart against the order's restaurant, and atomically replaces
// the line items with fresh unit-price snapshots. Returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !existing.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, errs.NewNotPermittedError("order", "this entity does not belong to you")
	}

	rest, err := uow.RestaurantRepository().Get(ctx, existing.RestaurantID())
	if err != nil {
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

	if err = existing.Revise(cmd.Address(), items, quote.ShippingCost, quote.Total); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
