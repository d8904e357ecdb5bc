package commands

import (
	"context"
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/product"
	"deliverus/internal/core/ports"
	"deliverus/internal/pkg/errs"
)

// ProductLine is one requested (product, quantity) pair from a create or
// update request, before the unit-price snapshot is taken.
type ProductLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// cartCheck is one pure predicate over the requested lines and the catalog
// products resolved for them. Each check returns the field violations it
// found, or nothing. Checks never touch persistence: the caller resolves the
// products once, then every check runs against that snapshot.
type cartCheck func(lines []ProductLine, products map[kernel.UUID]*product.Product, restaurantID kernel.UUID) []errs.FieldViolation

// cartChecks returns the ordered validation chain shared by order creation
// and update. All checks run before any mutation begins.
func cartChecks() []cartCheck {
	return []cartCheck{
		checkLinesNotEmpty,
		checkQuantitiesPositive,
		checkProductsExist,
		checkProductsAvailable,
		checkProductsBelongToRestaurant,
	}
}

// validateCart runs every cart check and collects all violations.
func validateCart(lines []ProductLine, products map[kernel.UUID]*product.Product, restaurantID kernel.UUID) []errs.FieldViolation {
	var violations []errs.FieldViolation
	for _, check := range cartChecks() {
		violations = append(violations, check(lines, products, restaurantID)...)
	}
	return violations
}

func checkLinesNotEmpty(lines []ProductLine, _ map[kernel.UUID]*product.Product, _ kernel.UUID) []errs.FieldViolation {
	if len(lines) == 0 {
		return []errs.FieldViolation{{Field: "products", Message: "must be a non-empty array"}}
	}
	return nil
}

func checkQuantitiesPositive(lines []ProductLine, _ map[kernel.UUID]*product.Product, _ kernel.UUID) []errs.FieldViolation {
	var violations []errs.FieldViolation
	for i, line := range lines {
		if line.Quantity <= 0 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("products[%d].quantity", i),
				Message: "must be greater than 0",
			})
		}
	}
	return violations
}

func checkProductsExist(lines []ProductLine, products map[kernel.UUID]*product.Product, _ kernel.UUID) []errs.FieldViolation {
	var violations []errs.FieldViolation
	for i, line := range lines {
		if _, ok := products[line.ProductID]; !ok {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("products[%d].productId", i),
				Message: "the productId does not exist",
			})
		}
	}
	return violations
}

func checkProductsAvailable(lines []ProductLine, products map[kernel.UUID]*product.Product, _ kernel.UUID) []errs.FieldViolation {
	var violations []errs.FieldViolation
	for i, line := range lines {
		p, ok := products[line.ProductID]
		if ok && !p.IsAvailable() {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("products[%d].productId", i),
				Message: "the product is not available",
			})
		}
	}
	return violations
}

func checkProductsBelongToRestaurant(lines []ProductLine, products map[kernel.UUID]*product.Product, restaurantID kernel.UUID) []errs.FieldViolation {
	var violations []errs.FieldViolation
	for i, line := range lines {
		p, ok := products[line.ProductID]
		if ok && !p.RestaurantID().IsEqual(restaurantID) {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("products[%d].productId", i),
				Message: "the product belongs to a different restaurant",
			})
		}
	}
	return violations
}

func checkAddress(address string) []errs.FieldViolation {
	if address == "" {
		return []errs.FieldViolation{{Field: "address", Message: "is required"}}
	}
	return nil
}

// resolveProducts loads every distinct product referenced by the lines and
// indexes the result by identifier. Missing products are detected later by
// checkProductsExist, not treated as a lookup failure here.
func resolveProducts(ctx context.Context, repo ports.ProductRepository, lines []ProductLine) (map[kernel.UUID]*product.Product, error) {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(found))
	for _, p := range found {
		products[p.ID()] = p
	}
	return products, nil
}

// buildLineItems turns validated product lines into line items, snapshotting
// each product's live price as the unit price.
func buildLineItems(lines []ProductLine, products map[kernel.UUID]*product.Product) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", line.ProductID.String())
		}
		item, err := order.NewLineItem(p.ID(), line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
