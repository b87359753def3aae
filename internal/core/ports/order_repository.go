package ports

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as a conditional
	// write: the row is updated only while its stored status still equals
	// expected. Returns errs.ErrConflict when another writer moved the order
	// past expected first, which makes the contended Pending -> Accepted
	// transition an at-most-once operation.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
