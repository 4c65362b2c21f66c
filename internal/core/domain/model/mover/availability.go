package mover

import (
	"fmt"
	"sort"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"
)

// Availability maps each weekday to the disjoint time-of-day windows during
// which the mover is willing to work. A missing weekday means not available
// that day. The schedule is read-only input for planning; it never gates a
// direct job acceptance.
type Availability struct {
	windows map[time.Weekday][]kernel.TimeWindow
}

// NewAvailability builds a schedule from per-weekday windows. Windows on the
// same day must not overlap; they are stored sorted by start time.
func NewAvailability(windows map[time.Weekday][]kernel.TimeWindow) (Availability, error) {
	normalized := make(map[time.Weekday][]kernel.TimeWindow, len(windows))
	for day, dayWindows := range windows {
		if len(dayWindows) == 0 {
			continue
		}

		sorted := make([]kernel.TimeWindow, len(dayWindows))
		copy(sorted, dayWindows)
		for _, w := range sorted {
			if err := w.Validate(); err != nil {
				return Availability{}, errs.NewValueIsInvalidErrorWithCause("availability", err)
			}
		}
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Start() < sorted[j].Start()
		})
		for i := 1; i < len(sorted); i++ {
			if sorted[i].Start() < sorted[i-1].End() {
				return Availability{}, errs.NewValueIsInvalidErrorWithCause("availability",
					fmt.Errorf("overlapping windows on %s: %s and %s",
						day, sorted[i-1], sorted[i]))
			}
		}
		normalized[day] = sorted
	}

	return Availability{windows: normalized}, nil
}

// EmptyAvailability is a schedule with no working hours at all.
func EmptyAvailability() Availability {
	return Availability{windows: map[time.Weekday][]kernel.TimeWindow{}}
}

// AlwaysAvailable is a schedule covering every minute of every day. Route
// planning uses it when the mover turns the availability filter off.
func AlwaysAvailable() Availability {
	fullDay, err := kernel.NewTimeWindow(0, kernel.MinutesPerDay)
	if err != nil {
		panic(err) // constants, cannot fail
	}

	windows := make(map[time.Weekday][]kernel.TimeWindow, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		windows[day] = []kernel.TimeWindow{fullDay}
	}
	return Availability{windows: windows}
}

// WindowsOn returns the windows declared for the given weekday, sorted by
// start time. The returned slice must not be mutated.
func (a Availability) WindowsOn(day time.Weekday) []kernel.TimeWindow {
	return a.windows[day]
}

// Days returns the weekdays with at least one declared window.
func (a Availability) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(a.windows))
	for day := range a.windows {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Covers reports whether a task starting at the given moment and running for
// durationMinutes fits entirely inside one declared window on that day.
// Tasks never span midnight; one that would reaches past its day's windows
// and is simply not covered.
func (a Availability) Covers(start time.Time, durationMinutes int) (bool, error) {
	if durationMinutes <= 0 {
		return false, errs.NewValueIsInvalidError("durationMinutes")
	}

	startOfDay := kernel.TimeOfDayFromTime(start)
	for _, w := range a.windows[start.Weekday()] {
		ok, err := w.ContainsInterval(startOfDay, durationMinutes)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
