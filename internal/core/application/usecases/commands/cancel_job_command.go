package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand withdraws a single job. The actor must be the order's
// owner or the job's assigned mover.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelJobCommand validates and builds the cancellation.
func NewCancelJobCommand(jobID, actorID kernel.UUID) (CancelJobCommand, error) {
	cmd := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActorID(actorID),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the job to cancel.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns who is cancelling.
func (c CancelJobCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("jobID", err)
	}
	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorID", err)
	}
	c.actorID = actorID
	return nil
}
