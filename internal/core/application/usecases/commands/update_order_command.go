package commands

import (
	"errors"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a customer's request to edit a pending order:
// a new delivery address and a full replacement of the line-item set. The
// restaurant is immutable after creation, so the command deliberately carries
// no restaurant identity; products are validated against the stored order's
// restaurant.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	address    string
	products   []ProductLine

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit a pending order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	address string,
	products []ProductLine,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		address:  address,
		products: products,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the authenticated customer requesting the edit.
func (c UpdateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the new delivery address.
func (c UpdateOrderCommand) Address() string {
	return c.address
}

// Products returns the replacement product lines.
func (c UpdateOrderCommand) Products() []ProductLine {
	return c.products
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
