package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMoverJobsQueryHandler reads one mover's assigned jobs from the
// database, terminal ones included so the history stays visible.
type GetMoverJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetMoverJobsQueryHandler creates a handler for mover job queries.
// Requires a GORM database connection for query execution.
func NewGetMoverJobsQueryHandler(db *gorm.DB) GetMoverJobsQueryHandler {
	return GetMoverJobsQueryHandler{db: db}
}

// Handle executes the query and returns the mover's jobs, most recently
// scheduled first.
func (h GetMoverJobsQueryHandler) Handle(
	ctx context.Context,
	query GetMoverJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		WHERE mover_id = ?
		ORDER BY scheduled_time DESC, id
	`, query.MoverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobResponses(rows)
}
