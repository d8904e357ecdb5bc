package order

import (
	"errors"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for one customer order at one restaurant. It
// owns the lifecycle transitions (confirm, send, deliver), the pending-only
// edit rules, and the consistency between its line items and its total price.
//
// Order maintains these invariants:
//   - customer, restaurant and the order itself have valid identifiers
//   - the delivery address is never empty
//   - there is at least one line item, and every item is valid
//   - transition timestamps are set once, in order (startedAt before sentAt
//     before deliveredAt), and never cleared
//   - the restaurant is immutable after creation
//
// The struct uses private fields so the invariants can only be changed through
// validated methods.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	address      string
	items        []LineItem
	price        float64
	shippingCost float64

	createdAt   time.Time
	startedAt   *time.Time
	sentAt      *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a pending order for a customer at a restaurant. The price
// and shipping cost are the result of the pricing service for the given items;
// all transition timestamps start unset.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	items []LineItem,
	shippingCost float64,
	price float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items),
		o.setPricing(shippingCost, price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// transition timestamps. It enforces the timestamp ordering invariant so that
// corrupted rows cannot produce an order in an impossible state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	items []LineItem,
	shippingCost float64,
	price float64,
	createdAt time.Time,
	startedAt *time.Time,
	sentAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, address, items, shippingCost, price, createdAt)
	if err != nil {
		return nil, err
	}

	if sentAt != nil && startedAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("sentAt",
			fmt.Errorf("order %s is sent but was never started", id))
	}
	if deliveredAt != nil && sentAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("order %s is delivered but was never sent", id))
	}

	o.startedAt = startedAt
	o.sentAt = sentAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through one of
// the constructors. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
// Only this customer may edit or delete the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant preparing the order.
// The restaurant is fixed at creation time.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the order's line items, preserving their order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Price returns the total price: the item subtotal plus the shipping cost.
func (o *Order) Price() float64 {
	return o.price
}

// ShippingCost returns the delivery fee applied to this order.
func (o *Order) ShippingCost() float64 {
	return o.shippingCost
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns when the restaurant confirmed the order, or nil.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// SentAt returns when the order left the restaurant, or nil.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// DeliveredAt returns when the order reached the customer, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Status derives the lifecycle state from the transition timestamps.
func (o *Order) Status() Status {
	return StatusFromTimestamps(o.startedAt, o.sentAt, o.deliveredAt)
}

// IsPending reports whether the order can still be edited or deleted by its
// customer.
func (o *Order) IsPending() bool {
	return o.startedAt == nil
}

// Confirm marks the order as started by the restaurant.
//
// Guard: startedAt must be unset. Violations return an InvalidStateError.
func (o *Order) Confirm(at time.Time) error {
	if o.startedAt != nil {
		return errs.NewInvalidStateError("order", "the order has already been started")
	}
	o.startedAt = &at
	return nil
}

// Send marks the order as on its way to the customer.
//
// Guard: startedAt must be set and sentAt unset.
func (o *Order) Send(at time.Time) error {
	if o.startedAt == nil {
		return errs.NewInvalidStateError("order", "the order has not been started yet")
	}
	if o.sentAt != nil {
		return errs.NewInvalidStateError("order", "the order has already been sent")
	}
	o.sentAt = &at
	return nil
}

// Deliver marks the order as received by the customer. Delivered is the final
// state; no further transitions are possible.
//
// Guard: sentAt must be set and deliveredAt unset.
func (o *Order) Deliver(at time.Time) error {
	if o.sentAt == nil {
		return errs.NewInvalidStateError("order", "the order has not been sent yet")
	}
	if o.deliveredAt != nil {
		return errs.NewInvalidStateError("order", "the order has already been delivered")
	}
	o.deliveredAt = &at
	return nil
}

// Revise replaces the delivery address, the entire line-item set, and the
// recomputed pricing in one step. The restaurant never changes.
//
// Guard: only pending orders can be revised. Violations return an
// InvalidStateError, so callers can map them to a conflict response.
func (o *Order) Revise(address string, items []LineItem, shippingCost, price float64) error {
	if !o.IsPending() {
		return errs.NewInvalidStateError("order", "the order cannot be modified because it is not pending")
	}

	if err := errors.Join(
		o.setAddress(address),
		o.setItems(items),
		o.setPricing(shippingCost, price),
	); err != nil {
		return err
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPricing(shippingCost, price float64) error {
	if shippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCost", fmt.Errorf("%v is negative", shippingCost))
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	o.shippingCost = shippingCost
	o.price = price
	return nil
}
