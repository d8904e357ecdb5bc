package commands

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var (
	ErrSendOrderCommandIsNotConstructed = errors.New(
		"SendOrderCommand must be created via NewSendOrderCommand constructor",
	)
)

// SendOrderCommand represents a restaurant owner's request to dispatch an
// order that is in process.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to send an order.
func NewSendOrderCommand(orderID, ownerID kernel.UUID) (SendOrderCommand, error) {
	cmd := SendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return SendOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// OrderID returns the order being sent.
func (c SendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the authenticated restaurant owner.
func (c SendOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *SendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SendOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}
