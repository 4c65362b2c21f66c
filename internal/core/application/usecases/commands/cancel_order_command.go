package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws a still-Pending order on the student's
// behalf.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	studentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand validates and builds the cancellation request.
func NewCancelOrderCommand(orderID, studentID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStudentID(studentID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StudentID returns the requesting student.
func (c CancelOrderCommand) StudentID() kernel.UUID {
	return c.studentID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentID", err)
	}
	c.studentID = studentID
	return nil
}
