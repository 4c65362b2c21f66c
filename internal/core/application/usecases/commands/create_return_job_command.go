package commands

import (
	"errors"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrCreateReturnJobCommandIsNotConstructed = errors.New(
	"CreateReturnJobCommand must be created via NewCreateReturnJobCommand constructor",
)

// CreateReturnJobCommand asks for the stored goods back. The return address
// is optional (nil keeps the order's student address); the actual return
// time drives the per-diem refund or late fee.
type CreateReturnJobCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	studentID        kernel.UUID
	returnAddress    *kernel.Address
	actualReturnTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateReturnJobCommand validates and builds the return request.
func NewCreateReturnJobCommand(
	orderID kernel.UUID,
	studentID kernel.UUID,
	returnAddress *kernel.Address,
	actualReturnTime time.Time,
) (CreateReturnJobCommand, error) {
	cmd := CreateReturnJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStudentID(studentID),
		cmd.setReturnAddress(returnAddress),
		cmd.setActualReturnTime(actualReturnTime),
	); err != nil {
		return CreateReturnJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnJobCommandIsNotConstructed)
}

// OrderID returns the order whose goods are requested back.
func (c CreateReturnJobCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StudentID returns the requesting student.
func (c CreateReturnJobCommand) StudentID() kernel.UUID {
	return c.studentID
}

// ReturnAddress returns the override address, or nil to reuse the order's
// student address.
func (c CreateReturnJobCommand) ReturnAddress() *kernel.Address {
	return c.returnAddress
}

// ActualReturnTime returns when the student wants the goods delivered.
func (c CreateReturnJobCommand) ActualReturnTime() time.Time {
	return c.actualReturnTime
}

func (c *CreateReturnJobCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CreateReturnJobCommand) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentID", err)
	}
	c.studentID = studentID
	return nil
}

func (c *CreateReturnJobCommand) setReturnAddress(addr *kernel.Address) error {
	if addr == nil {
		return nil
	}
	if err := addr.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("returnAddress", err)
	}
	c.returnAddress = addr
	return nil
}

func (c *CreateReturnJobCommand) setActualReturnTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("actualReturnTime")
	}
	c.actualReturnTime = t
	return nil
}
