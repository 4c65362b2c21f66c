package mover

import (
	"errors"
	"strings"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

// Mover is the aggregate root for a worker on the supply side of the
// marketplace. It tracks the credit balance earned from completed jobs, the
// mover's base location (the starting point for route planning), and the
// weekly availability schedule.
type Mover struct {
	id           kernel.UUID
	name         string
	location     kernel.Location
	balance      float64
	availability Availability
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewMover creates a mover with a zero balance and the given schedule.
func NewMover(id kernel.UUID, name string, location kernel.Location, availability Availability) (*Mover, error) {
	now := time.Now().UTC()
	m := &Mover{
		availability: availability,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}

	err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setLocation(location),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RestoreMover reconstructs a mover from persistence.
func RestoreMover(
	id kernel.UUID,
	name string,
	location kernel.Location,
	balance float64,
	availability Availability,
	createdAt time.Time,
	updatedAt time.Time,
) (*Mover, error) {
	m := &Mover{
		availability: availability,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setLocation(location),
		m.setBalance(balance),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Validate reports whether the mover was built through a constructor.
func (m *Mover) Validate() error {
	return m.guard.Validate(errs.NewValueIsRequiredError("mover"))
}

// IsEqual compares movers by identity.
func (m *Mover) IsEqual(other *Mover) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the mover's identifier.
func (m *Mover) ID() kernel.UUID {
	return m.id
}

// Name returns the mover's display name.
func (m *Mover) Name() string {
	return m.name
}

// Location returns the mover's base location, the origin of planned routes.
func (m *Mover) Location() kernel.Location {
	return m.location
}

// Balance returns the credit earned from completed jobs.
func (m *Mover) Balance() float64 {
	return m.balance
}

// Availability returns the weekly schedule.
func (m *Mover) Availability() Availability {
	return m.availability
}

// CreatedAt returns the creation timestamp.
func (m *Mover) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (m *Mover) UpdatedAt() time.Time {
	return m.updatedAt
}

// Credit adds a completed job's price to the balance.
func (m *Mover) Credit(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	m.balance += amount
	m.touch()
	return nil
}

// UpdateAvailability replaces the weekly schedule. It affects future
// planning only; jobs already accepted stay accepted.
func (m *Mover) UpdateAvailability(availability Availability) {
	m.availability = availability
	m.touch()
}

// MoveTo updates the mover's base location.
func (m *Mover) MoveTo(location kernel.Location) error {
	if err := m.setLocation(location); err != nil {
		return err
	}
	m.touch()
	return nil
}

func (m *Mover) touch() {
	m.updatedAt = time.Now().UTC()
}

func (m *Mover) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	m.id = id
	return nil
}

func (m *Mover) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Mover) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}
	m.location = location
	return nil
}

func (m *Mover) setBalance(balance float64) error {
	if balance < 0 {
		return errs.NewValueIsInvalidError("balance")
	}
	m.balance = balance
	return nil
}
