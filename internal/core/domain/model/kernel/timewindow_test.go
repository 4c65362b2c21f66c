package kernel_test

import (
	"testing"
	"time"

	"moveout/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func TestNewTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(9, 30)
		require.NoError(t, err)
		assert.Equal(t, kernel.TimeOfDay(570), tod)
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("invalid_hour", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(24, 0)
		require.Error(t, err)
	})

	t.Run("invalid_minute", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(10, 60)
		require.Error(t, err)
	})
}

func TestTimeOfDayFromTime(t *testing.T) {
	moment := time.Date(2025, time.September, 1, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, kernel.TimeOfDay(14*60+45), kernel.TimeOfDayFromTime(moment))
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, err := kernel.NewTimeWindow(mustTimeOfDay(t, 9, 0), mustTimeOfDay(t, 17, 0))
		require.NoError(t, err)
		assert.Equal(t, "09:00-17:00", w.String())
	})

	t.Run("end_not_after_start", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(mustTimeOfDay(t, 17, 0), mustTimeOfDay(t, 9, 0))
		require.Error(t, err)

		_, err = kernel.NewTimeWindow(mustTimeOfDay(t, 9, 0), mustTimeOfDay(t, 9, 0))
		require.Error(t, err)
	})
}

func TestTimeWindow_ContainsInterval(t *testing.T) {
	window, err := kernel.NewTimeWindow(mustTimeOfDay(t, 9, 0), mustTimeOfDay(t, 17, 0))
	require.NoError(t, err)

	tests := []struct {
		name     string
		start    kernel.TimeOfDay
		duration int
		want     bool
	}{
		{"fits_inside", mustTimeOfDay(t, 10, 0), 60, true},
		{"exactly_fills_window", mustTimeOfDay(t, 9, 0), 8 * 60, true},
		{"starts_before_window", mustTimeOfDay(t, 8, 30), 60, false},
		{"ends_after_window", mustTimeOfDay(t, 16, 30), 60, false},
		{"zero_duration_at_start", mustTimeOfDay(t, 9, 0), 0, true},
		{"zero_duration_before_window", mustTimeOfDay(t, 8, 0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := window.ContainsInterval(tt.start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("crossing_midnight_never_fits", func(t *testing.T) {
		late, err := kernel.NewTimeWindow(mustTimeOfDay(t, 20, 0), kernel.TimeOfDay(kernel.MinutesPerDay))
		require.NoError(t, err)

		got, err := late.ContainsInterval(mustTimeOfDay(t, 23, 30), 60)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("negative_duration_is_rejected", func(t *testing.T) {
		_, err := window.ContainsInterval(mustTimeOfDay(t, 10, 0), -1)
		require.Error(t, err)
	})

	t.Run("zero_value_window_is_rejected", func(t *testing.T) {
		var zero kernel.TimeWindow
		_, err := zero.ContainsInterval(mustTimeOfDay(t, 10, 0), 10)
		require.Error(t, err)
	})
}
