package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/product"
)

// ProductRepository provides read access to the product catalog. When obtained
// through a unit of work with an open transaction, lookups read from the same
// consistent snapshot as the order writes.
type ProductRepository interface {
	// Get retrieves a product by unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves all products for the given identifiers. Missing
	// identifiers are simply absent from the result; callers detect them by
	// comparing lengths.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
