// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"deliverus/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages order and restaurant access for operations that touch a
	// single order row: deletion and the lifecycle transitions. Transitions
	// are persisted as atomic conditional updates, so they do not open an
	// explicit transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	// OrderUoWFactory creates new OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across orders, products, and restaurants. Used
	// by creation and update, whose price computation must read product prices
	// and the restaurant from the same consistent snapshot the order is
	// written in.
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		RestaurantRepoFactory
	}

	// UoWFactory creates new UoW instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
