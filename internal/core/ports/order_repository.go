package ports

import (
	"context"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items.
type OrderRepository interface {
	// Add persists a new order and all of its line items as one unit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The stored line-item set
	// is replaced in full by the aggregate's current items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and cascades to its line items, never leaving
	// orphaned items behind. Returns an ObjectNotFoundError when no row was
	// removed.
	Delete(ctx context.Context, id kernel.UUID) error

	// MarkStarted sets startedAt as an atomic conditional update: the write
	// only happens when startedAt is still unset. Returns false when the
	// guard did not match (already started, or raced with a concurrent
	// confirm), so two concurrent requests can never both succeed.
	MarkStarted(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)

	// MarkSent sets sentAt when startedAt is set and sentAt is still unset.
	MarkSent(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)

	// MarkDelivered sets deliveredAt when sentAt is set and deliveredAt is
	// still unset.
	MarkDelivered(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)
}
