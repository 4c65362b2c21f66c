package ports

import (
	"context"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The storage layer enforces the
	// one-active-order-per-student rule with a conditional insert, so a
	// losing concurrent Add surfaces as AlreadyExists rather than leaving
	// two active orders behind.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByStudent retrieves the student's active order, or
	// ObjectNotFound when every order of theirs is terminal.
	GetActiveByStudent(ctx context.Context, studentID kernel.UUID) (*order.Order, error)

	// GetByIdempotencyKey retrieves the order created under the given
	// checkout idempotency key, or ObjectNotFound.
	GetByIdempotencyKey(ctx context.Context, key string) (*order.Order, error)
}
