package kernel

import (
	"errors"
	"fmt"

	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

// Coordinate represents a cell index on the service-area grid. The city the
// marketplace operates in is partitioned into a coarse grid of cells; pickup
// and dropoff addresses resolve to a cell, and travel estimates are derived
// from cell distance.
type Coordinate int16

const (
	// LocationMinX is the westmost valid cell index.
	LocationMinX Coordinate = 1
	// LocationMinY is the southmost valid cell index.
	LocationMinY Coordinate = 1
	// LocationMaxX is the eastmost valid cell index.
	LocationMaxX Coordinate = 50
	// LocationMaxY is the northmost valid cell index.
	LocationMaxY Coordinate = 50
)

// ErrLocationIsNotConstructed is returned when using an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via the NewLocation constructor")

// Location is an immutable value object for a point on the service-area
// grid. The zero value is invalid and fails validation.
//
// Example:
//
//	loc, err := kernel.NewLocation(12, 34)
//	if err != nil {
//	    // out-of-bounds coordinates
//	}
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location after checking that both coordinates are
// inside [LocationMinX..LocationMaxX] and [LocationMinY..LocationMaxY].
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the east-west cell index.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the north-south cell index.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer as "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual reports whether two locations refer to the same cell. Both must be
// properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return l == other, nil
}

// Distance returns the Manhattan distance in cells between two locations:
// |x1-x2| + |y1-y2|. Street travel in the grid moves along axes, so the
// Manhattan metric is the natural base for travel-time estimates.
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := absCoordinate(l.x - other.x)
	dy := absCoordinate(l.y - other.y)
	return int(dx + dy), nil
}

// Private setters enable self-encapsulated validation during construction;
// value receivers everywhere else keep Location immutable.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}
	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}
	l.y = y
	return nil
}

func absCoordinate(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
