package commands

import (
	"context"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
)

// ConfirmOrderCommandHandler moves a pending order into "in process" on
// behalf of the restaurant owner.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory}
}

// Handle confirms the order. The persistence step is a conditional update
// keyed on startedAt still being null, so of two concurrent confirmations
// exactly one wins.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	o, err := loadOwnedOrder(ctx, uow, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := o.Confirm(now); err != nil {
		return nil, err
	}

	updated, err := uow.OrderRepository().MarkStarted(ctx, o.ID(), now)
	if err != nil {
		return nil, fmt.Errorf("mark order started: %w", err)
	}
	if !updated {
		return nil, errs.NewInvalidStateError("order", "the order has already been started")
	}

	return o, nil
}
