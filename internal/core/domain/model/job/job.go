package job

import (
	"errors"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through NewJob or RestoreJob.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")

// Job is the aggregate root for a single pickup-or-delivery task. It owns
// the (status, moverID) pair, the one piece of shared mutable state in the
// coordination core; all writes to that pair go through the methods here or
// through the repository's conditional update, never through direct field
// access.
//
// Invariant: moverID is set if and only if the status requires a mover
// (Accepted and later). An Available job has no mover; a job cancelled
// before assignment keeps none.
type Job struct {
	// id is the unique identifier of the job
	id kernel.UUID

	// orderID links the job to its parent order
	orderID kernel.UUID

	// studentID is the order owner, the confirming party of the handshake
	studentID kernel.UUID

	// moverID is the assigned mover (nil while Available)
	moverID *kernel.UUID

	// jobType says which order phase the job serves
	jobType Type

	// status is the current lifecycle state
	status Status

	// volume is the size of the goods being moved
	volume int

	// price is the credit the mover earns on completion
	price float64

	// pickupAddress and dropoffAddress are the two ends of the leg
	pickupAddress  kernel.Address
	dropoffAddress kernel.Address

	// scheduledTime is when the mover is expected at the pickup address
	scheduledTime time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewJob creates a fresh job in Available status with no mover assigned.
// All parameters are validated; errors are joined so the caller sees every
// problem at once.
func NewJob(
	id kernel.UUID,
	orderID kernel.UUID,
	studentID kernel.UUID,
	jobType Type,
	volume int,
	price float64,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledTime time.Time,
) (*Job, error) {
	now := time.Now().UTC()
	j := &Job{
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setOrderID(orderID),
		j.setStudentID(studentID),
		j.setJobType(jobType),
		j.setVolume(volume),
		j.setPrice(price),
		j.setPickupAddress(pickupAddress),
		j.setDropoffAddress(dropoffAddress),
		j.setScheduledTime(scheduledTime),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a job from persistence, including its status and
// mover assignment. It enforces the mover/status consistency invariant so a
// corrupted row cannot become a live aggregate.
func RestoreJob(
	id kernel.UUID,
	orderID kernel.UUID,
	studentID kernel.UUID,
	moverID *kernel.UUID,
	jobType Type,
	status Status,
	volume int,
	price float64,
	pickupAddress kernel.Address,
	dropoffAddress kernel.Address,
	scheduledTime time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Job, error) {
	j := &Job{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setOrderID(orderID),
		j.setStudentID(studentID),
		j.setJobType(jobType),
		j.setStatus(status),
		j.setVolume(volume),
		j.setPrice(price),
		j.setPickupAddress(pickupAddress),
		j.setDropoffAddress(dropoffAddress),
		j.setScheduledTime(scheduledTime),
	); err != nil {
		return nil, err
	}

	if err := j.setMover(moverID); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// OrderID returns the parent order's identifier.
func (j *Job) OrderID() kernel.UUID {
	return j.orderID
}

// StudentID returns the order owner's identifier.
func (j *Job) StudentID() kernel.UUID {
	return j.studentID
}

// Mover returns the assigned mover's ID, or nil while the job is Available.
func (j *Job) Mover() *kernel.UUID {
	return j.moverID
}

// JobType returns whether this is the storage or the return leg.
func (j *Job) JobType() Type {
	return j.jobType
}

// Status returns the current lifecycle state.
func (j *Job) Status() Status {
	return j.status
}

// Volume returns the size of the goods being moved.
func (j *Job) Volume() int {
	return j.volume
}

// Price returns the credit the mover earns on completion.
func (j *Job) Price() float64 {
	return j.price
}

// PickupAddress returns where the mover collects the goods.
func (j *Job) PickupAddress() kernel.Address {
	return j.pickupAddress
}

// DropoffAddress returns where the mover delivers the goods.
func (j *Job) DropoffAddress() kernel.Address {
	return j.dropoffAddress
}

// ScheduledTime returns when the mover is expected at the pickup address.
func (j *Job) ScheduledTime() time.Time {
	return j.scheduledTime
}

// CreatedAt returns the creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns the last transition timestamp.
func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

// Accept assigns the job to a mover. Only an Available job can be accepted,
// and acceptance sets the mover in the same step so the invariant "assigned
// iff not Available" can never be observed half-applied.
//
// Under concurrency the database's conditional update is the arbiter; this
// method encodes the same rule for the in-memory path. A job that is no
// longer Available yields AlreadyAssigned so the caller can refresh its
// list instead of retrying blindly.
func (j *Job) Accept(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	if j.status != StatusAvailable {
		return errs.NewAlreadyAssignedError(j.id.String())
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.moverID = &moverID
	j.touch()
	return nil
}

// RequestArrivalConfirmation is the mover's half of the handshake: the
// mover declares arrival at the student's address and the job moves to
// AwaitingStudentConfirmation. Only the assigned mover may do this.
func (j *Job) RequestArrivalConfirmation(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	if err := j.authorizeMover(moverID); err != nil {
		return err
	}

	newStatus, err := j.status.RequestConfirmation()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// ConfirmByStudent is the student's half of the handshake. For a storage
// job the goods change hands and the job becomes PickedUp; for a return job
// this is the final delivery confirmation and the job completes. Only the
// order owner may confirm.
func (j *Job) ConfirmByStudent(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}

	if !j.studentID.IsEqual(studentID) {
		return errs.NewUnauthorizedError(studentID.String(), "job "+j.id.String())
	}

	newStatus, err := j.status.Confirm(j.jobType)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// CompleteDelivery records the warehouse drop-off that finishes a storage
// job. Return jobs complete through the student's confirmation instead, so
// calling this on a return job is an invalid transition.
func (j *Job) CompleteDelivery(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return err
	}

	if err := j.authorizeMover(moverID); err != nil {
		return err
	}

	if j.jobType != TypeStorage {
		return errs.NewInvalidTransitionError("job", j.status.String(), StatusCompleted.String())
	}

	newStatus, err := j.status.CompleteDelivery()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch()
	return nil
}

// Cancel withdraws the job from any non-terminal state. Actor authorization
// is the command handler's concern; the aggregate only guards the lifecycle
// graph.
func (j *Job) Cancel() error {
	if j.status == StatusCancelled {
		return errs.NewAlreadyCancelledError("job", j.id.String())
	}
	if !j.status.CanCancel() {
		return errs.NewInvalidTransitionError("job", j.status.String(), StatusCancelled.String())
	}

	j.status = StatusCancelled
	j.touch()
	return nil
}

// authorizeMover rejects actions by anyone but the assigned mover.
func (j *Job) authorizeMover(moverID kernel.UUID) error {
	if j.moverID == nil || !j.moverID.IsEqual(moverID) {
		return errs.NewUnauthorizedError(moverID.String(), "job "+j.id.String())
	}
	return nil
}

func (j *Job) touch() {
	j.updatedAt = time.Now().UTC()
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	j.orderID = orderID
	return nil
}

func (j *Job) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}
	j.studentID = studentID
	return nil
}

func (j *Job) setJobType(jobType Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}
	j.jobType = jobType
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

// setMover enforces the mover/status consistency invariant during restore.
func (j *Job) setMover(moverID *kernel.UUID) error {
	if moverID != nil {
		if err := moverID.Validate(); err != nil {
			return err
		}
	}

	if j.status.RequiresMover() && moverID == nil {
		return errs.NewValueIsRequiredErrorWithCause("moverId",
			errors.New("status "+j.status.String()+" requires an assigned mover"))
	}
	if j.status == StatusAvailable && moverID != nil {
		return errs.NewValueIsInvalidErrorWithCause("moverId",
			errors.New("an available job cannot have an assigned mover"))
	}

	j.moverID = moverID
	return nil
}

func (j *Job) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidError("volume")
	}
	j.volume = volume
	return nil
}

func (j *Job) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	j.price = price
	return nil
}

func (j *Job) setPickupAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	j.pickupAddress = addr
	return nil
}

func (j *Job) setDropoffAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	j.dropoffAddress = addr
	return nil
}

func (j *Job) setScheduledTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("scheduledTime")
	}
	j.scheduledTime = t
	return nil
}
