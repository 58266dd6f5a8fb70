// Package ports defines repository interfaces for the yard management domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and takes a row lock on it
	// for the duration of the current transaction. Concurrent monitor runs
	// block on the lock instead of processing the same order twice.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every accepted order whose movement has not
	// finished: outcome is Completed and the move phase is not Arrived.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
