package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrConfirmHandoffCommandIsNotConstructed = errors.New(
	"ConfirmHandoffCommand must be created via NewConfirmHandoffCommand constructor",
)

// ConfirmHandoffCommand is the student's half of the handshake: confirming
// the mover at the door actually took (or returned) the goods.
type ConfirmHandoffCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	studentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmHandoffCommand validates and builds the confirmation.
func NewConfirmHandoffCommand(jobID, studentID kernel.UUID) (ConfirmHandoffCommand, error) {
	cmd := ConfirmHandoffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setStudentID(studentID),
	); err != nil {
		return ConfirmHandoffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmHandoffCommand) Validate() error {
	return c.guard.Validate(ErrConfirmHandoffCommandIsNotConstructed)
}

// JobID returns the job being confirmed.
func (c ConfirmHandoffCommand) JobID() kernel.UUID {
	return c.jobID
}

// StudentID returns the confirming student.
func (c ConfirmHandoffCommand) StudentID() kernel.UUID {
	return c.studentID
}

func (c *ConfirmHandoffCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("jobID", err)
	}
	c.jobID = jobID
	return nil
}

func (c *ConfirmHandoffCommand) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentID", err)
	}
	c.studentID = studentID
	return nil
}
