package services

import (
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
)

// FreeShippingThreshold is the subtotal above which delivery is free. The
// comparison is strict: a subtotal of exactly 10.0 still pays shipping.
const FreeShippingThreshold = 10.0

// PriceQuote is the result of pricing a set of line items against a
// restaurant's default shipping cost.
type PriceQuote struct {
	// Subtotal is the sum of quantity times unit-price snapshot over all items.
	Subtotal float64

	// ShippingCost is zero when Subtotal exceeds FreeShippingThreshold,
	// otherwise the restaurant's default shipping cost.
	ShippingCost float64

	// Total is Subtotal plus ShippingCost.
	Total float64
}

// OrderPricer is a domain service computing the price of an order from its
// line items.
//
// Business rules:
//   - subtotal = sum of quantity_i * unitPrice_i over all line items
//   - shipping is waived when the subtotal is strictly greater than
//     FreeShippingThreshold; otherwise the restaurant's default applies
//   - total = subtotal + shipping
//
// The caller is responsible for building the line items from a consistent
// snapshot of live product prices (one transaction), so that a concurrent
// price change cannot produce a total inconsistent with the persisted items.
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Quote prices the given line items. The item set must be non-empty and every
// item valid; defaultShippingCost is the restaurant's configured delivery fee.
func (OrderPricer) Quote(items []order.LineItem, defaultShippingCost float64) (PriceQuote, error) {
	if len(items) == 0 {
		return PriceQuote{}, errs.NewValueIsRequiredError("items")
	}

	var subtotal float64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return PriceQuote{}, err
		}
		subtotal += item.Subtotal()
	}

	quote := PriceQuote{Subtotal: subtotal}
	if subtotal > FreeShippingThreshold {
		quote.ShippingCost = 0
	} else {
		quote.ShippingCost = defaultShippingCost
	}
	quote.Total = quote.Subtotal + quote.ShippingCost

	return quote, nil
}
