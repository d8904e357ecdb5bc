// Package restaurant provides the read model for restaurants. The order
// lifecycle needs two facts about a restaurant: who owns it (for transition
// authorization) and its default shipping cost (for pricing).
package restaurant

import (
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created
// through the NewRestaurant constructor.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a read-only view of one restaurant.
type Restaurant struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	name         string
	shippingCost float64

	isConstructed bool
}

// NewRestaurant reconstructs a restaurant from persistence.
func NewRestaurant(id, ownerID kernel.UUID, name string, shippingCost float64) (*Restaurant, error) {
	r := &Restaurant{
		name:          name,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setShippingCost(shippingCost),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant instance was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the user who owns the restaurant. Only
// this user may progress the restaurant's orders through the lifecycle.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// ShippingCost returns the default delivery fee charged when an order's
// subtotal does not reach the free-shipping threshold.
func (r *Restaurant) ShippingCost() float64 {
	return r.shippingCost
}

// IsOwnedBy reports whether the given user owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setShippingCost(shippingCost float64) error {
	if shippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCost", fmt.Errorf("%v is negative", shippingCost))
	}
	r.shippingCost = shippingCost
	return nil
}
