package commands

import (
	"context"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
)

// SendOrderCommandHandler dispatches an in-process order on behalf of the
// restaurant owner.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderCommandHandler creates a handler for order dispatch.
func NewSendOrderCommandHandler(uowFactory OrderUoWFactory) SendOrderCommandHandler {
	return SendOrderCommandHandler{uowFactory: uowFactory}
}

// Handle marks the order as sent. The conditional update requires startedAt
// to be set and sentAt to still be null.
func (h *SendOrderCommandHandler) Handle(ctx context.Context, cmd SendOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	o, err := loadOwnedOrder(ctx, uow, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := o.Send(now); err != nil {
		return nil, err
	}

	updated, err := uow.OrderRepository().MarkSent(ctx, o.ID(), now)
	if err != nil {
		return nil, fmt.Errorf("mark order sent: %w", err)
	}
	if !updated {
		return nil, errs.NewInvalidStateError("order", "the order has already been sent")
	}

	return o, nil
}
