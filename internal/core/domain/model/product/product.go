// Package product provides the read model for restaurant products. Orders
// reference products by identity and snapshot their live price; the product
// catalog itself is managed elsewhere.
package product

import (
	"errors"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a read-only view of one item on a restaurant's menu: its live
// price and whether it can currently be ordered.
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        float64
	availability bool

	isConstructed bool
}

// NewProduct reconstructs a product from persistence.
func NewProduct(id, restaurantID kernel.UUID, name string, price float64, availability bool) (*Product, error) {
	p := &Product{
		name:          name,
		availability:  availability,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRestaurantID(restaurantID),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// RestaurantID returns the restaurant this product belongs to.
func (p *Product) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current (live) unit price.
func (p *Product) Price() float64 {
	return p.price
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.availability
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	p.restaurantID = restaurantID
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}
