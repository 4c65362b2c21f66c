package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrRequestArrivalConfirmationCommandIsNotConstructed = errors.New(
	"RequestArrivalConfirmationCommand must be created via NewRequestArrivalConfirmationCommand constructor",
)

// RequestArrivalConfirmationCommand is the mover's half of the handoff
// handshake: "I am at the door".
type RequestArrivalConfirmationCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestArrivalConfirmationCommand validates and builds the request.
func NewRequestArrivalConfirmationCommand(jobID, moverID kernel.UUID) (RequestArrivalConfirmationCommand, error) {
	cmd := RequestArrivalConfirmationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setMoverID(moverID),
	); err != nil {
		return RequestArrivalConfirmationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestArrivalConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrRequestArrivalConfirmationCommandIsNotConstructed)
}

// JobID returns the job the mover arrived for.
func (c RequestArrivalConfirmationCommand) JobID() kernel.UUID {
	return c.jobID
}

// MoverID returns the mover declaring arrival.
func (c RequestArrivalConfirmationCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *RequestArrivalConfirmationCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("jobID", err)
	}
	c.jobID = jobID
	return nil
}

func (c *RequestArrivalConfirmationCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}
	c.moverID = moverID
	return nil
}
