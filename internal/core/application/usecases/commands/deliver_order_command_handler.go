package commands

import (
	"context"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
)

// DeliverOrderCommandHandler marks a sent order as delivered on behalf of
// the restaurant owner.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{uowFactory: uowFactory}
}

// Handle marks the order as delivered. The conditional update requires
// sentAt to be set and deliveredAt to still be null.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	o, err := loadOwnedOrder(ctx, uow, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := o.Deliver(now); err != nil {
		return nil, err
	}

	updated, err := uow.OrderRepository().MarkDelivered(ctx, o.ID(), now)
	if err != nil {
		return nil, fmt.Errorf("mark order delivered: %w", err)
	}
	if !updated {
		return nil, errs.NewInvalidStateError("order", "the order has already been delivered")
	}

	return o, nil
}
