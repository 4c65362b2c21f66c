package queries

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrSuggestRouteQueryIsNotConstructed = errors.New(
	"SuggestRouteQuery must be created via NewSuggestRouteQuery constructor",
)

// SuggestRouteQuery asks for an earnings-maximizing route over the open
// jobs for one mover. The time budget caps the whole route; when
// ignoreAvailability is set the mover's schedule is not consulted.
type SuggestRouteQuery struct { //nolint:recvcheck //using for validation
	moverID            kernel.UUID
	maxDurationMinutes int
	ignoreAvailability bool

	guard guard.ConstructorGuard
}

// NewSuggestRouteQuery validates and builds the route request.
func NewSuggestRouteQuery(
	moverID kernel.UUID,
	maxDurationMinutes int,
	ignoreAvailability bool,
) (SuggestRouteQuery, error) {
	if err := moverID.Validate(); err != nil {
		return SuggestRouteQuery{}, errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}
	if maxDurationMinutes <= 0 {
		return SuggestRouteQuery{}, errs.NewValueIsInvalidError("maxDurationMinutes")
	}

	return SuggestRouteQuery{
		moverID:            moverID,
		maxDurationMinutes: maxDurationMinutes,
		ignoreAvailability: ignoreAvailability,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SuggestRouteQuery) Validate() error {
	return q.guard.Validate(ErrSuggestRouteQueryIsNotConstructed)
}

// MoverID returns the mover the route is planned for.
func (q SuggestRouteQuery) MoverID() kernel.UUID {
	return q.moverID
}

// MaxDurationMinutes returns the route time budget.
func (q SuggestRouteQuery) MaxDurationMinutes() int {
	return q.maxDurationMinutes
}

// IgnoreAvailability reports whether the mover's schedule is skipped.
func (q SuggestRouteQuery) IgnoreAvailability() bool {
	return q.ignoreAvailability
}

// RouteLegResponse is one stop of a suggested route with the running
// totals after completing it.
type RouteLegResponse struct {
	Job                       JobResponse
	TravelMinutesFromPrevious int
	CumulativeMinutes         int
	CumulativeEarnings        float64
}

// SuggestRouteResponse is the planned route read model.
type SuggestRouteResponse struct {
	Jobs          []RouteLegResponse
	TotalMinutes  int
	TotalEarnings float64
}
