package commands

import (
	"context"

	"deliverus/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles deletion of pending orders.
//
// The pending check and the delete run in one transaction so a concurrent
// confirm cannot slip between them; the line items go with the order in the
// same atomic unit, never leaving orphans.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, enforces ownership and the pending-only rule, and
// removes the order together with all of its line items.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !existing.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewNotPermittedError("order", "this entity does not belong to you")
	}

	if !existing.IsPending() {
		return errs.NewInvalidStateError("order", "the order cannot be deleted because it is not pending")
	}

	if err = orderRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
