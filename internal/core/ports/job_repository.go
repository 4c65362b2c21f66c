// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the external
// collaborators (payments, notifications, geocoding).
package ports

import (
	"context"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate. Used for every
	// transition except acceptance, which must go through TryAssign.
	Update(ctx context.Context, aggregate *job.Job) error

	// TryAssign persists an acceptance as a single conditional write: the
	// stored row is updated only if it is still Available. When a competing
	// mover got there first the update matches no row and TryAssign returns
	// AlreadyAssigned, leaving the winner untouched. This is the only legal
	// way to persist an Available -> Accepted transition.
	TryAssign(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllAvailable retrieves every job currently open for acceptance.
	GetAllAvailable(ctx context.Context) ([]*job.Job, error)

	// GetByOrder retrieves all jobs belonging to an order, regardless of
	// status.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error)

	// GetByMover retrieves all jobs assigned to a mover.
	GetByMover(ctx context.Context, moverID kernel.UUID) ([]*job.Job, error)
}
