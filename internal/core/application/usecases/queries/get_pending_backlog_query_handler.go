package queries

import (
	"context"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBacklogQueryHandler reports restaurants with unconfirmed orders
// older than the requested age. Used by the backlog report job rather than
// the HTTP API.
type GetPendingBacklogQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetPendingBacklogQueryHandler creates a handler for backlog queries.
func NewGetPendingBacklogQueryHandler(db *gorm.DB) GetPendingBacklogQueryHandler {
	return GetPendingBacklogQueryHandler{db: db, now: time.Now}
}

// NewGetPendingBacklogQueryHandlerWithClock creates a handler with an
// injectable clock for deterministic cutoffs in tests.
func NewGetPendingBacklogQueryHandlerWithClock(
	db *gorm.DB,
	now func() time.Time,
) GetPendingBacklogQueryHandler {
	return GetPendingBacklogQueryHandler{db: db, now: now}
}

// Handle returns one entry per restaurant that has pending orders created at
// or before now minus olderThan, busiest backlog first.
func (h GetPendingBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBacklogQuery,
) ([]PendingBacklogEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := h.now().UTC().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.restaurant_id, r.name, COUNT(*), MIN(o.created_at)
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.started_at IS NULL AND o.created_at <= ?
		GROUP BY o.restaurant_id, r.name
		ORDER BY COUNT(*) DESC, r.name
	`, cutoff).Rows()
	if err != nil {
		return nil, fmt.Errorf("query pending backlog: %w", err)
	}
	defer rows.Close()

	entries := make([]PendingBacklogEntry, 0)
	for rows.Next() {
		var (
			restaurantID uuid.UUID
			entry        PendingBacklogEntry
		)

		if err = rows.Scan(&restaurantID, &entry.RestaurantName, &entry.NumPending, &entry.OldestAt); err != nil {
			return nil, fmt.Errorf("scan pending backlog row: %w", err)
		}

		entry.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
