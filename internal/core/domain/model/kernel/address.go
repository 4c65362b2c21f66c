package kernel

import (
	"errors"
	"fmt"

	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via the NewAddress constructor")

// Address couples a human-readable address line with its resolved grid
// location. The line is what students and movers see; the location is what
// travel estimates use. Geocoding happens outside the domain, so an Address
// always arrives here already resolved.
type Address struct { //nolint:recvcheck //using for validation
	line     string
	location Location
	guard    guard.ConstructorGuard
}

// NewAddress creates an Address from a non-empty line and a valid location.
func NewAddress(line string, location Location) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setLine(line), addr.setLocation(location)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line returns the display text of the address.
func (a Address) Line() string {
	return a.line
}

// Location returns the resolved grid cell of the address.
func (a Address) Location() Location {
	return a.location
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s @ %s", a.line, a.location)
}

func (a *Address) setLine(line string) error {
	if line == "" {
		return errs.NewValueIsRequiredError("address line")
	}
	a.line = line
	return nil
}

func (a *Address) setLocation(location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
