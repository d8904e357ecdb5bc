package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/restaurant"
)

// RestaurantRepository provides read access to restaurants.
type RestaurantRepository interface {
	// Get retrieves a restaurant by unique identifier.
	// Returns an ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
