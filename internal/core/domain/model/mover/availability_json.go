package mover

import (
	"encoding/json"
	"time"

	"moveout/internal/core/domain/model/kernel"
)

// availabilityWindowJSON is the wire shape of a single window: minutes from
// midnight, half-open.
type availabilityWindowJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MarshalJSON encodes the schedule as a weekday-keyed object, weekdays as
// integers matching time.Weekday (0 = Sunday).
func (a Availability) MarshalJSON() ([]byte, error) {
	encoded := make(map[time.Weekday][]availabilityWindowJSON, len(a.windows))
	for day, dayWindows := range a.windows {
		windows := make([]availabilityWindowJSON, 0, len(dayWindows))
		for _, w := range dayWindows {
			windows = append(windows, availabilityWindowJSON{
				Start: int(w.Start()),
				End:   int(w.End()),
			})
		}
		encoded[day] = windows
	}
	return json.Marshal(encoded)
}

// UnmarshalJSON decodes a schedule produced by MarshalJSON, re-validating
// the windows on the way in.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var encoded map[time.Weekday][]availabilityWindowJSON
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}

	windows := make(map[time.Weekday][]kernel.TimeWindow, len(encoded))
	for day, dayWindows := range encoded {
		converted := make([]kernel.TimeWindow, 0, len(dayWindows))
		for _, w := range dayWindows {
			tw, err := kernel.NewTimeWindow(kernel.TimeOfDay(w.Start), kernel.TimeOfDay(w.End))
			if err != nil {
				return err
			}
			converted = append(converted, tw)
		}
		windows[day] = converted
	}

	restored, err := NewAvailability(windows)
	if err != nil {
		return err
	}
	*a = restored
	return nil
}
