package queries

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrGetMoverJobsQueryIsNotConstructed = errors.New(
	"GetMoverJobsQuery must be created via NewGetMoverJobsQuery constructor",
)

// GetMoverJobsQuery retrieves the jobs assigned to one mover, the working
// list behind a mover's "my jobs" screen.
type GetMoverJobsQuery struct { //nolint:recvcheck //using for validation
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMoverJobsQuery creates a query for one mover's assigned jobs.
func NewGetMoverJobsQuery(moverID kernel.UUID) (GetMoverJobsQuery, error) {
	if err := moverID.Validate(); err != nil {
		return GetMoverJobsQuery{}, errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}

	return GetMoverJobsQuery{
		moverID: moverID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMoverJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetMoverJobsQueryIsNotConstructed)
}

// MoverID returns the mover whose jobs are requested.
func (q GetMoverJobsQuery) MoverID() kernel.UUID {
	return q.moverID
}
