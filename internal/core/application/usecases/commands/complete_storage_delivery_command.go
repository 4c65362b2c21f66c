package commands

import (
	"errors"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrCompleteStorageDeliveryCommandIsNotConstructed = errors.New(
	"CompleteStorageDeliveryCommand must be created via NewCompleteStorageDeliveryCommand constructor",
)

// CompleteStorageDeliveryCommand records the mover dropping the goods at
// the warehouse, finishing a storage job.
type CompleteStorageDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	moverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteStorageDeliveryCommand validates and builds the drop-off
// record.
func NewCompleteStorageDeliveryCommand(jobID, moverID kernel.UUID) (CompleteStorageDeliveryCommand, error) {
	cmd := CompleteStorageDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setMoverID(moverID),
	); err != nil {
		return CompleteStorageDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStorageDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStorageDeliveryCommandIsNotConstructed)
}

// JobID returns the storage job being finished.
func (c CompleteStorageDeliveryCommand) JobID() kernel.UUID {
	return c.jobID
}

// MoverID returns the mover at the warehouse.
func (c CompleteStorageDeliveryCommand) MoverID() kernel.UUID {
	return c.moverID
}

func (c *CompleteStorageDeliveryCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("jobID", err)
	}
	c.jobID = jobID
	return nil
}

func (c *CompleteStorageDeliveryCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}
	c.moverID = moverID
	return nil
}
