// Package productrepo provides read access to the product catalog for order
// validation and pricing. Products are managed by the catalog side of the
// system; this repository only reads them.
package productrepo

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure of catalog products.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        float64
	Availability bool
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product read model.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, restaurantID, dto.Name, dto.Price, dto.Availability)
}
