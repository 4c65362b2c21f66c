// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
	"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
)

// GetAvailableJobsQuery retrieves every job still open for acceptance,
// the list movers browse before claiming work. Optionally scoped to one
// mover so the board only shows jobs that fit their availability windows.
type GetAvailableJobsQuery struct {
	moverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableJobsQuery creates a query for the open job board. This is a
// parameterless query that fetches every Available job.
func NewGetAvailableJobsQuery() GetAvailableJobsQuery {
	return GetAvailableJobsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAvailableJobsQueryForMover creates a job-board query narrowed to the
// jobs whose whole service interval fits the given mover's availability.
func NewGetAvailableJobsQueryForMover(moverID kernel.UUID) (GetAvailableJobsQuery, error) {
	if err := moverID.Validate(); err != nil {
		return GetAvailableJobsQuery{}, errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}

	return GetAvailableJobsQuery{
		moverID: &moverID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}

// MoverID returns the mover whose availability scopes the board, or nil for
// the unfiltered listing.
func (q GetAvailableJobsQuery) MoverID() *kernel.UUID {
	return q.moverID
}

// AddressResponse is the read-model shape of a pickup or dropoff address.
type AddressResponse struct {
	Line     string
	Location kernel.Location
}

// JobResponse represents a job in the read model: everything a mover needs
// to judge whether the work is worth taking.
type JobResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	JobType        string
	Status         string
	Volume         int
	Price          float64
	PickupAddress  AddressResponse
	DropoffAddress AddressResponse
	ScheduledTime  time.Time
}
