package commands

import (
	"errors"
	"strings"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

var ErrRegisterMoverCommandIsNotConstructed = errors.New(
	"RegisterMoverCommand must be created via NewRegisterMoverCommand constructor",
)

// RegisterMoverCommand signs a new mover up with a base location and an
// initial weekly schedule.
type RegisterMoverCommand struct { //nolint:recvcheck //using for validation
	moverID      kernel.UUID
	name         string
	location     kernel.Location
	availability mover.Availability

	guard guard.ConstructorGuard
}

// NewRegisterMoverCommand validates and builds the registration.
func NewRegisterMoverCommand(
	moverID kernel.UUID,
	name string,
	location kernel.Location,
	availability mover.Availability,
) (RegisterMoverCommand, error) {
	cmd := RegisterMoverCommand{
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMoverID(moverID),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return RegisterMoverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMoverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMoverCommandIsNotConstructed)
}

// MoverID returns the identifier the mover will be registered under.
func (c RegisterMoverCommand) MoverID() kernel.UUID {
	return c.moverID
}

// Name returns the display name.
func (c RegisterMoverCommand) Name() string {
	return c.name
}

// Location returns the base location.
func (c RegisterMoverCommand) Location() kernel.Location {
	return c.location
}

// Availability returns the initial weekly schedule.
func (c RegisterMoverCommand) Availability() mover.Availability {
	return c.availability
}

func (c *RegisterMoverCommand) setMoverID(moverID kernel.UUID) error {
	if err := moverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("moverID", err)
	}
	c.moverID = moverID
	return nil
}

func (c *RegisterMoverCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterMoverCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}
	c.location = location
	return nil
}
