package order

import (
	"errors"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

// Order is the aggregate root for a student's storage booking. It owns the
// money side (total price, per-diem adjustments on return) and projects the
// progress of its jobs into a single customer-facing status.
//
// The aggregate never mutates its jobs; command handlers apply job
// transitions and then call the matching projection method here, keeping the
// order the single source of truth for "where is my stuff".
type Order struct {
	id               kernel.UUID
	studentID        kernel.UUID
	status           Status
	volume           int
	totalPrice       float64
	studentAddress   kernel.Address
	warehouseAddress kernel.Address
	returnAddress    *kernel.Address
	pickupTime       time.Time
	returnTime       time.Time
	actualReturnTime *time.Time
	idempotencyKey   string
	createdAt        time.Time
	updatedAt        time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order at checkout. The expected return time
// must lie after the pickup time; the actual return time is recorded later,
// when the student schedules the return.
func NewOrder(
	id kernel.UUID,
	studentID kernel.UUID,
	volume int,
	totalPrice float64,
	studentAddress kernel.Address,
	warehouseAddress kernel.Address,
	pickupTime time.Time,
	returnTime time.Time,
	idempotencyKey string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:         StatusPending,
		idempotencyKey: idempotencyKey,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setVolume(volume),
		o.setTotalPrice(totalPrice),
		o.setStudentAddress(studentAddress),
		o.setWarehouseAddress(warehouseAddress),
		o.setSchedule(pickupTime, returnTime),
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	studentID kernel.UUID,
	status Status,
	volume int,
	totalPrice float64,
	studentAddress kernel.Address,
	warehouseAddress kernel.Address,
	returnAddress *kernel.Address,
	pickupTime time.Time,
	returnTime time.Time,
	actualReturnTime *time.Time,
	idempotencyKey string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		returnAddress:    returnAddress,
		actualReturnTime: actualReturnTime,
		idempotencyKey:   idempotencyKey,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		guard:            guard.NewConstructorGuard(),
	}

	err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setStatus(status),
		o.setVolume(volume),
		o.setTotalPrice(totalPrice),
		o.setStudentAddress(studentAddress),
		o.setWarehouseAddress(warehouseAddress),
		o.setSchedule(pickupTime, returnTime),
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Validate reports whether the order was built through a constructor.
func (o *Order) Validate() error {
	return o.guard.Validate(errs.NewValueIsRequiredError("order"))
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StudentID returns the owning student's identifier.
func (o *Order) StudentID() kernel.UUID {
	return o.studentID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Volume returns the booked storage volume.
func (o *Order) Volume() int {
	return o.volume
}

// TotalPrice returns the price charged at checkout.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// StudentAddress returns the pickup address.
func (o *Order) StudentAddress() kernel.Address {
	return o.studentAddress
}

// WarehouseAddress returns the storage facility address.
func (o *Order) WarehouseAddress() kernel.Address {
	return o.warehouseAddress
}

// ReturnAddress returns the explicitly chosen return address, or nil when
// the student has not overridden it.
func (o *Order) ReturnAddress() *kernel.Address {
	return o.returnAddress
}

// EffectiveReturnAddress is where a return job delivers: the chosen return
// address when set, the original student address otherwise.
func (o *Order) EffectiveReturnAddress() kernel.Address {
	if o.returnAddress != nil {
		return *o.returnAddress
	}
	return o.studentAddress
}

// PickupTime returns the scheduled pickup time.
func (o *Order) PickupTime() time.Time {
	return o.pickupTime
}

// ReturnTime returns the return time agreed at checkout.
func (o *Order) ReturnTime() time.Time {
	return o.returnTime
}

// ActualReturnTime returns the return time the student actually scheduled,
// or nil before a return was requested.
func (o *Order) ActualReturnTime() *time.Time {
	return o.actualReturnTime
}

// IdempotencyKey returns the checkout idempotency key, empty if none was
// supplied.
func (o *Order) IdempotencyKey() string {
	return o.idempotencyKey
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsActive reports whether the order still counts against the student's
// one-active-order limit.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// Accept projects a job acceptance onto the order.
func (o *Order) Accept() error {
	return o.transition(o.status.Accept)
}

// MarkPickedUp projects the student's storage-pickup confirmation.
func (o *Order) MarkPickedUp() error {
	return o.transition(o.status.MarkPickedUp)
}

// MarkInStorage projects the storage job's warehouse drop-off.
func (o *Order) MarkInStorage() error {
	return o.transition(o.status.MarkInStorage)
}

// ReturnToStorage rewinds the order to InStorage after its return job was
// cancelled, so the student can schedule a new return.
func (o *Order) ReturnToStorage() error {
	return o.transition(o.status.ReturnToStorage)
}

// Complete projects the student's return-delivery confirmation.
func (o *Order) Complete() error {
	return o.transition(o.status.Complete)
}

// CancelByStudent is the direct cancellation path. Only the owner may
// cancel, and only while the order is still Pending: once a mover has
// accepted, work is in progress and the order can no longer be withdrawn.
func (o *Order) CancelByStudent(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}
	if !o.studentID.IsEqual(studentID) {
		return errs.NewUnauthorizedError(studentID.String(), "order "+o.id.String())
	}

	if o.status == StatusCancelled {
		return errs.NewAlreadyCancelledError("order", o.id.String())
	}
	if o.status != StatusPending {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}

	o.status = StatusCancelled
	o.touch()
	return nil
}

// Cancel is the projection path: the order's in-flight storage job was
// cancelled, taking the whole order with it. Allowed from any non-terminal
// state.
func (o *Order) Cancel() error {
	if o.status == StatusCancelled {
		return errs.NewAlreadyCancelledError("order", o.id.String())
	}
	if !o.status.CanCancel() {
		return errs.NewInvalidTransitionError("order", o.status.String(), StatusCancelled.String())
	}

	o.status = StatusCancelled
	o.touch()
	return nil
}

// ScheduleReturn records the student's requested return: the effective
// return address (nil keeps the original student address) and the actual
// return time the per-diem adjustment is computed against. Only an order
// whose goods are in storage can schedule a return.
func (o *Order) ScheduleReturn(returnAddress *kernel.Address, actualReturnTime time.Time) error {
	if o.status != StatusInStorage {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String())
	}
	if actualReturnTime.IsZero() {
		return errs.NewValueIsRequiredError("actualReturnTime")
	}
	if returnAddress != nil {
		if err := returnAddress.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("returnAddress", err)
		}
		o.returnAddress = returnAddress
	}

	t := actualReturnTime
	o.actualReturnTime = &t
	o.touch()
	return nil
}

// ReturnDaysDifference is the signed number of whole days between the
// return time agreed at checkout and the given actual return time. Negative
// means early (refund), positive means late (fee), zero means on time.
func (o *Order) ReturnDaysDifference(actualReturnTime time.Time) int {
	return int(actualReturnTime.Sub(o.returnTime).Hours() / 24)
}

func (o *Order) transition(step func() (Status, error)) error {
	newStatus, err := step()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentID", err)
	}
	o.studentID = studentID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidError("volume")
	}
	o.volume = volume
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStudentAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentAddress", err)
	}
	o.studentAddress = addr
	return nil
}

func (o *Order) setWarehouseAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("warehouseAddress", err)
	}
	o.warehouseAddress = addr
	return nil
}

func (o *Order) setSchedule(pickupTime, returnTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickupTime")
	}
	if returnTime.IsZero() {
		return errs.NewValueIsRequiredError("returnTime")
	}
	if !returnTime.After(pickupTime) {
		return errs.NewValueIsInvalidError("returnTime")
	}
	o.pickupTime = pickupTime
	o.returnTime = returnTime
	return nil
}
