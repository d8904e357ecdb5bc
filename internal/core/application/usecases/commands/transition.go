package commands

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
)

// loadOwnedOrder fetches the order together with its restaurant and verifies
// that the restaurant belongs to ownerID. Lifecycle transitions are only
// available to the owner of the restaurant the order was placed at.
func loadOwnedOrder(ctx context.Context, uow OrderUoW, orderID, ownerID kernel.UUID) (*order.Order, error) {
	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !rest.IsOwnedBy(ownerID) {
		return nil, errs.NewNotPermittedError("order", "this entity does not belong to you")
	}

	return o, nil
}
