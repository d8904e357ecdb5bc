// Package restaurantrepo provides read access to restaurants for ownership
// checks and default shipping costs. Restaurants are managed elsewhere; this
// repository only reads them.
package restaurantrepo

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure of restaurants.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	ShippingCost float64
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toDomain converts a database DTO to a restaurant read model.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, ownerID, dto.Name, dto.ShippingCost)
}
