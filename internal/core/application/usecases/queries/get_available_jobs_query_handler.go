package queries

import (
	"context"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/services"
	"moveout/internal/core/ports"

	"gorm.io/gorm"
)

// GetAvailableJobsQueryHandler reads the open job board. The unfiltered
// listing goes straight to the database for optimal read performance in the
// CQRS pattern; the mover-scoped variant needs full aggregates for the
// availability filter, so it reads through the repositories like route
// planning does. Either way the listing is a snapshot and may lose a race
// to a concurrent acceptance, which the claim path resolves.
type GetAvailableJobsQueryHandler struct {
	db        *gorm.DB
	jobRepo   ports.JobRepository
	moverRepo ports.MoverRepository
	planner   services.RoutePlanner
}

// NewGetAvailableJobsQueryHandler creates a handler for job board queries.
func NewGetAvailableJobsQueryHandler(
	db *gorm.DB,
	jobRepo ports.JobRepository,
	moverRepo ports.MoverRepository,
	planner services.RoutePlanner,
) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{
		db:        db,
		jobRepo:   jobRepo,
		moverRepo: moverRepo,
		planner:   planner,
	}
}

// Handle executes the query to retrieve available jobs, sorted by scheduled
// time so the most urgent work lists first.
func (h GetAvailableJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.MoverID() != nil {
		return h.handleForMover(ctx, *query.MoverID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			job_type,
			status,
			volume,
			price,
			pickup_line,
			pickup_x,
			pickup_y,
			dropoff_line,
			dropoff_x,
			dropoff_y,
			scheduled_time
		FROM jobs
		WHERE status = ?
		ORDER BY scheduled_time, id
	`, int(job.StatusAvailable)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobResponses(rows)
}

func (h GetAvailableJobsQueryHandler) handleForMover(
	ctx context.Context,
	moverID kernel.UUID,
) ([]JobResponse, error) {
	theMover, err := h.moverRepo.Get(ctx, moverID)
	if err != nil {
		return nil, err
	}

	available, err := h.jobRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	fitting, err := h.planner.FilterJobsByAvailability(available, theMover.Availability())
	if err != nil {
		return nil, err
	}

	responses := make([]JobResponse, 0, len(fitting))
	for _, j := range fitting {
		responses = append(responses, toJobResponse(j))
	}
	return responses, nil
}
