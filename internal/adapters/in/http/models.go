package http

import (
	"time"

	"moveout/internal/core/application/usecases/queries"
	"moveout/internal/core/domain/model/mover"
)

// Error is the body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address carries an address line with its grid location.
type Address struct {
	Line string `json:"line"`
	X    int16  `json:"x"`
	Y    int16  `json:"y"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	StudentID        string    `json:"student_id"`
	Volume           int       `json:"volume"`
	TotalPrice       float64   `json:"total_price"`
	StudentAddress   Address   `json:"student_address"`
	WarehouseAddress Address   `json:"warehouse_address"`
	PickupTime       time.Time `json:"pickup_time"`
	ReturnTime       time.Time `json:"return_time"`
	IdempotencyKey   string    `json:"idempotency_key,omitempty"`
}

// CreateOrderResponse identifies the order and its pickup job.
type CreateOrderResponse struct {
	OrderID      string  `json:"order_id"`
	StorageJobID string  `json:"storage_job_id"`
	TotalPrice   float64 `json:"total_price"`
}

// CancelOrderRequest names the student asking for the cancellation.
type CancelOrderRequest struct {
	StudentID string `json:"student_id"`
}

// CreateReturnJobRequest asks for the stored goods back. The return address
// is optional; when omitted the original pickup address is used.
type CreateReturnJobRequest struct {
	StudentID        string     `json:"student_id"`
	ReturnAddress    *Address   `json:"return_address,omitempty"`
	ActualReturnTime *time.Time `json:"actual_return_time,omitempty"`
}

// CreateReturnJobResponse reports the return job and the per-diem
// settlement applied at scheduling time.
type CreateReturnJobResponse struct {
	ReturnJobID   string  `json:"return_job_id"`
	AlreadyExists bool    `json:"already_exists"`
	Refund        float64 `json:"refund"`
	LateFee       float64 `json:"late_fee"`
}

// RegisterMoverRequest enrolls a mover with a weekly availability grid.
// Availability keys are weekday numbers (0 Sunday), values are windows in
// minutes from midnight.
type RegisterMoverRequest struct {
	Name         string             `json:"name"`
	Location     Location           `json:"location"`
	Availability mover.Availability `json:"availability"`
}

// RegisterMoverResponse returns the generated mover identifier.
type RegisterMoverResponse struct {
	MoverID string `json:"mover_id"`
}

// Location is a point on the campus grid.
type Location struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
}

// MoverActionRequest names the mover performing a job-side action.
type MoverActionRequest struct {
	MoverID string `json:"mover_id"`
}

// StudentActionRequest names the student performing an order-side action.
type StudentActionRequest struct {
	StudentID string `json:"student_id"`
}

// CancelJobRequest names whoever is cancelling; students and movers cancel
// under different rules.
type CancelJobRequest struct {
	ActorID string `json:"actor_id"`
}

// AcceptRouteRequest claims a list of jobs for a mover in one call.
type AcceptRouteRequest struct {
	MoverID string   `json:"mover_id"`
	JobIDs  []string `json:"job_ids"`
}

// AcceptRouteResponse reports the per-job outcome of a batch claim.
type AcceptRouteResponse struct {
	Accepted []Job         `json:"accepted"`
	Rejected []RejectedJob `json:"rejected"`
}

// RejectedJob names a job that could not be claimed and why.
type RejectedJob struct {
	JobID  string `json:"job_id"`
	Reason string `json:"reason"`
}

// Job is the wire representation of a job.
type Job struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	JobType        string    `json:"job_type"`
	Status         string    `json:"status"`
	Volume         int       `json:"volume"`
	Price          float64   `json:"price"`
	PickupAddress  Address   `json:"pickup_address"`
	DropoffAddress Address   `json:"dropoff_address"`
	ScheduledTime  time.Time `json:"scheduled_time"`
}

// RouteLeg is one stop of a suggested route with running totals.
type RouteLeg struct {
	Job                       Job     `json:"job"`
	TravelMinutesFromPrevious int     `json:"travel_minutes_from_previous"`
	CumulativeMinutes         int     `json:"cumulative_minutes"`
	CumulativeEarnings        float64 `json:"cumulative_earnings"`
}

// SuggestRouteResponse is a planned route with its totals.
type SuggestRouteResponse struct {
	Jobs          []RouteLeg `json:"jobs"`
	TotalMinutes  int        `json:"total_minutes"`
	TotalEarnings float64    `json:"total_earnings"`
}

func jobFromReadModel(j queries.JobResponse) Job {
	return Job{
		ID:             j.ID.String(),
		OrderID:        j.OrderID.String(),
		JobType:        j.JobType,
		Status:         j.Status,
		Volume:         j.Volume,
		Price:          j.Price,
		PickupAddress:  addressFromReadModel(j.PickupAddress),
		DropoffAddress: addressFromReadModel(j.DropoffAddress),
		ScheduledTime:  j.ScheduledTime,
	}
}

func addressFromReadModel(a queries.AddressResponse) Address {
	return Address{
		Line: a.Line,
		X:    int16(a.Location.X()),
		Y:    int16(a.Location.Y()),
	}
}
