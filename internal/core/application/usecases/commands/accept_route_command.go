package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrAcceptRouteCommandIsNotConstructed = errors.New(
	"AcceptRouteCommand must be created via NewAcceptRouteCommand constructor",
)

// AcceptRouteCommand is a mover's claim on every job of a suggested route
// at once.
type AcceptRouteCommand struct { //nolint:recvcheck //using for validation
	jobIDs  []kernel.UUID
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptRouteCommand validates and builds the batch claim.
func NewAcceptRouteCommand(jobIDs []kernel.UUID, moverID kernel.UUID) (AcceptRouteCommand, error) {
	cmd := AcceptRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobIDs(jobIDs),
		cmd.setMoverID(moverID),
	); err != nil {
		return AcceptRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptRouteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRouteCommandIsNotConstructed)
}

// JobIDs returns the claimed jobs in route order.
func (c AcceptRouteCommand) JobIDs() []kernel.UUID {
	return c.jobIDs
}

// MoverID returns the claiming mover.
func (c AcceptRouteCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *AcceptRouteCommand) setJobIDs(jobIDs []kernel.UUID) error {
	if len(jobIDs) == 0 {
		return errs.NewValueIsRequiredError("jobIDs")
	}
	seen := make(map[kernel.UUID]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("jobIDs", err)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidError("jobIDs")
		}
		seen[id] = struct{}{}
	}
	c.jobIDs = jobIDs
	return nil
}

func (c *AcceptRouteCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}
	c.moverID = moverID
	return nil
}
