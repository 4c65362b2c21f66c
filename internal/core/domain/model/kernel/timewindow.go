package kernel

import (
	"errors"
	"fmt"
	"time"

	"moveout/internal/pkg/errs"
	"moveout/internal/pkg/guard"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// TimeOfDay is a minute-of-day value in [0, MinutesPerDay). It carries no
// date or timezone; callers are expected to resolve wall-clock times before
// entering the domain.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from an hour and minute pair.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFromTime extracts the minute-of-day of t in t's own location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String implements fmt.Stringer as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ErrTimeWindowIsNotConstructed is returned when using an improperly
// initialized TimeWindow. Windows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via the NewTimeWindow constructor")

// TimeWindow is a half-open [start, end) interval within a single day,
// used to express mover availability. A window never crosses midnight.
type TimeWindow struct { //nolint:recvcheck //using for validation
	start TimeOfDay
	end   TimeOfDay
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a window covering [start, end). End must lie
// strictly after start and within the same day.
func NewTimeWindow(start, end TimeOfDay) (TimeWindow, error) {
	w := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setStart(start), w.setEnd(end)); err != nil {
		return TimeWindow{}, err
	}

	if w.end <= w.start {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("end %s is not after start %s", end, start))
	}

	return w, nil
}

// Validate returns ErrTimeWindowIsNotConstructed for the zero value.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the inclusive start minute of the window.
func (w TimeWindow) Start() TimeOfDay {
	return w.start
}

// End returns the exclusive end minute of the window.
func (w TimeWindow) End() TimeOfDay {
	return w.end
}

// String implements fmt.Stringer as "HH:MM-HH:MM".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.start, w.end)
}

// ContainsInterval reports whether the whole interval
// [start, start+durationMinutes) fits inside the window. Intervals that
// would cross midnight never fit, since windows are single-day.
func (w TimeWindow) ContainsInterval(start TimeOfDay, durationMinutes int) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if durationMinutes < 0 {
		return false, errs.NewValueIsInvalidError("durationMinutes")
	}

	end := int(start) + durationMinutes
	if end > MinutesPerDay {
		return false, nil
	}
	return start >= w.start && TimeOfDay(end) <= w.end, nil
}

func (w *TimeWindow) setStart(start TimeOfDay) error {
	if start < 0 || start >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("start", int(start), 0, MinutesPerDay-1)
	}
	w.start = start
	return nil
}

func (w *TimeWindow) setEnd(end TimeOfDay) error {
	if end < 0 || end > MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("end", int(end), 0, MinutesPerDay)
	}
	w.end = end
	return nil
}
