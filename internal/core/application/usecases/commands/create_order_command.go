package commands

import (
	"errors"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a student's checkout: book storage volume
// between a pickup time and an expected return time. An optional idempotency
// key makes retried checkouts safe.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	studentID        kernel.UUID
	volume           int
	totalPrice       float64
	studentAddress   kernel.Address
	warehouseAddress kernel.Address
	pickupTime       time.Time
	returnTime       time.Time
	idempotencyKey   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and builds the checkout command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	studentID kernel.UUID,
	volume int,
	totalPrice float64,
	studentAddress kernel.Address,
	warehouseAddress kernel.Address,
	pickupTime time.Time,
	returnTime time.Time,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStudentID(studentID),
		cmd.setVolume(volume),
		cmd.setTotalPrice(totalPrice),
		cmd.setStudentAddress(studentAddress),
		cmd.setWarehouseAddress(warehouseAddress),
		cmd.setSchedule(pickupTime, returnTime),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StudentID returns the checkout's owner.
func (c CreateOrderCommand) StudentID() kernel.UUID {
	return c.studentID
}

// Volume returns the booked storage volume.
func (c CreateOrderCommand) Volume() int {
	return c.volume
}

// TotalPrice returns the checkout price.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// StudentAddress returns the pickup address.
func (c CreateOrderCommand) StudentAddress() kernel.Address {
	return c.studentAddress
}

// WarehouseAddress returns the storage facility address.
func (c CreateOrderCommand) WarehouseAddress() kernel.Address {
	return c.warehouseAddress
}

// PickupTime returns the scheduled pickup time.
func (c CreateOrderCommand) PickupTime() time.Time {
	return c.pickupTime
}

// ReturnTime returns the expected return time.
func (c CreateOrderCommand) ReturnTime() time.Time {
	return c.returnTime
}

// IdempotencyKey returns the optional retry key, empty if none.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentID", err)
	}
	c.studentID = studentID
	return nil
}

func (c *CreateOrderCommand) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidError("volume")
	}
	c.volume = volume
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	c.totalPrice = totalPrice
	return nil
}

func (c *CreateOrderCommand) setStudentAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentAddress", err)
	}
	c.studentAddress = addr
	return nil
}

func (c *CreateOrderCommand) setWarehouseAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("warehouseAddress", err)
	}
	c.warehouseAddress = addr
	return nil
}

func (c *CreateOrderCommand) setSchedule(pickupTime, returnTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickupTime")
	}
	if returnTime.IsZero() {
		return errs.NewValueIsRequiredError("returnTime")
	}
	if !returnTime.After(pickupTime) {
		return errs.NewValueIsInvalidError("returnTime")
	}
	c.pickupTime = pickupTime
	c.returnTime = returnTime
	return nil
}
