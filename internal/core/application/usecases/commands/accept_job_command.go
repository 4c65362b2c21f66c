package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand is a mover's claim on an available job.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand validates and builds the claim.
func NewAcceptJobCommand(jobID, moverID kernel.UUID) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setMoverID(moverID),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the claimed job.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// MoverID returns the claiming mover.
func (c AcceptJobCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("jobID", err)
	}
	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}
	c.moverID = moverID
	return nil
}
