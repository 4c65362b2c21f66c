package queries

import (
	"database/sql"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanJobResponses converts job rows into read models. The column order must
// match the SELECT lists in this package's job queries.
func scanJobResponses(rows *sql.Rows) ([]JobResponse, error) {
	jobs := make([]JobResponse, 0)

	for rows.Next() {
		var resp JobResponse
		var id, orderID uuid.UUID
		var jobType, status int
		var pickupX, pickupY, dropoffX, dropoffY int16

		err := rows.Scan(
			&id,
			&orderID,
			&jobType,
			&status,
			&resp.Volume,
			&resp.Price,
			&resp.PickupAddress.Line,
			&pickupX,
			&pickupY,
			&resp.DropoffAddress.Line,
			&dropoffX,
			&dropoffY,
			&resp.ScheduledTime,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = jobID

		jobOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = jobOrderID

		resp.JobType = job.Type(jobType).String()
		resp.Status = job.Status(status).String()

		pickup, locErr := kernel.NewLocation(
			kernel.Coordinate(pickupX),
			kernel.Coordinate(pickupY),
		)
		if locErr != nil {
			return nil, locErr
		}
		resp.PickupAddress.Location = pickup

		dropoff, locErr := kernel.NewLocation(
			kernel.Coordinate(dropoffX),
			kernel.Coordinate(dropoffY),
		)
		if locErr != nil {
			return nil, locErr
		}
		resp.DropoffAddress.Location = dropoff

		jobs = append(jobs, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
