package queries

import (
	"context"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/mover"
	"moveout/internal/core/domain/services"
	"moveout/internal/core/ports"
)

// SuggestRouteQueryHandler plans a route over the currently open jobs.
// Unlike the flat read models in this package it needs full aggregates for
// the planner, so it reads through the repositories rather than raw SQL.
// The suggestion is advisory: jobs may be taken by competitors before the
// mover accepts, and the claim path settles those races.
type SuggestRouteQueryHandler struct {
	jobRepo   ports.JobRepository
	moverRepo ports.MoverRepository
	planner   services.RoutePlanner
}

// NewSuggestRouteQueryHandler creates a handler for route suggestions.
func NewSuggestRouteQueryHandler(
	jobRepo ports.JobRepository,
	moverRepo ports.MoverRepository,
	planner services.RoutePlanner,
) SuggestRouteQueryHandler {
	return SuggestRouteQueryHandler{
		jobRepo:   jobRepo,
		moverRepo: moverRepo,
		planner:   planner,
	}
}

// Handle plans a route for the mover and returns it as a read model.
func (h SuggestRouteQueryHandler) Handle(
	ctx context.Context,
	query SuggestRouteQuery,
) (SuggestRouteResponse, error) {
	if err := query.Validate(); err != nil {
		return SuggestRouteResponse{}, err
	}

	theMover, err := h.moverRepo.Get(ctx, query.MoverID())
	if err != nil {
		return SuggestRouteResponse{}, err
	}

	available, err := h.jobRepo.GetAllAvailable(ctx)
	if err != nil {
		return SuggestRouteResponse{}, err
	}

	availability := theMover.Availability()
	if query.IgnoreAvailability() {
		availability = mover.AlwaysAvailable()
	}

	route, err := h.planner.BuildOptimalRoute(
		available, theMover.Location(), availability, query.MaxDurationMinutes())
	if err != nil {
		return SuggestRouteResponse{}, err
	}

	return toRouteResponse(route), nil
}

func toRouteResponse(route services.SuggestedRoute) SuggestRouteResponse {
	resp := SuggestRouteResponse{
		Jobs:          make([]RouteLegResponse, 0, len(route.Jobs)),
		TotalMinutes:  route.TotalMinutes,
		TotalEarnings: route.TotalEarnings,
	}
	for _, leg := range route.Jobs {
		resp.Jobs = append(resp.Jobs, RouteLegResponse{
			Job:                       toJobResponse(leg.Job),
			TravelMinutesFromPrevious: leg.TravelMinutesFromPrevious,
			CumulativeMinutes:         leg.CumulativeMinutes,
			CumulativeEarnings:        leg.CumulativeEarnings,
		})
	}
	return resp
}

func toJobResponse(j *job.Job) JobResponse {
	return JobResponse{
		ID:      j.ID(),
		OrderID: j.OrderID(),
		JobType: j.JobType().String(),
		Status:  j.Status().String(),
		Volume:  j.Volume(),
		Price:   j.Price(),
		PickupAddress: AddressResponse{
			Line:     j.PickupAddress().Line(),
			Location: j.PickupAddress().Location(),
		},
		DropoffAddress: AddressResponse{
			Line:     j.DropoffAddress().Line(),
			Location: j.DropoffAddress().Location(),
		},
		ScheduledTime: j.ScheduledTime(),
	}
}
