package order

import (
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product-quantity entry within an order. The unit price is a
// snapshot of the product's live price captured when the order was created or
// last updated, so historical orders are never retroactively repriced.
//
// LineItem is a value object: it has no identity of its own and belongs to
// exactly one order.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for the given product. Quantity must be
// greater than zero and the unit price snapshot must not be negative.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice float64) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns how many units of the product were ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price snapshot captured for one unit of the product.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Subtotal returns quantity times the unit price snapshot.
func (li LineItem) Subtotal() float64 {
	return float64(li.quantity) * li.unitPrice
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}
