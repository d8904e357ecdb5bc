package queries

import (
	"errors"
	"fmt"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

var ErrGetPendingBacklogQueryIsNotConstructed = errors.New(
	"GetPendingBacklogQuery must be created via NewGetPendingBacklogQuery")

// GetPendingBacklogQuery requests the per-restaurant backlog of orders that
// have been waiting for confirmation longer than olderThan.
type GetPendingBacklogQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewGetPendingBacklogQuery(olderThan time.Duration) (GetPendingBacklogQuery, error) {
	if olderThan < 0 {
		return GetPendingBacklogQuery{}, fmt.Errorf("olderThan: %w", errs.ErrValueIsOutOfRange)
	}

	return GetPendingBacklogQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPendingBacklogQuery) OlderThan() time.Duration {
	return q.olderThan
}

func (q GetPendingBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBacklogQueryIsNotConstructed)
}

// PendingBacklogEntry summarizes the unconfirmed orders of one restaurant.
type PendingBacklogEntry struct {
	RestaurantID   kernel.UUID
	RestaurantName string
	NumPending     int
	OldestAt       time.Time
}
