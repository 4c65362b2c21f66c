package ports

import (
	"context"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"
)

// MoverRepository defines the persistence contract for mover aggregates.
type MoverRepository interface {
	// Add persists a new mover aggregate.
	Add(ctx context.Context, aggregate *mover.Mover) error

	// Update persists changes to an existing mover aggregate, including
	// balance credits and schedule changes.
	Update(ctx context.Context, aggregate *mover.Mover) error

	// Get retrieves a mover by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error)
}
