package kernel_test

import (
	"testing"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		x, y    kernel.Coordinate
		wantErr bool
	}{
		{"valid_interior", 12, 34, false},
		{"valid_min_corner", kernel.LocationMinX, kernel.LocationMinY, false},
		{"valid_max_corner", kernel.LocationMaxX, kernel.LocationMaxY, false},
		{"x_below_min", 0, 10, true},
		{"y_below_min", 10, 0, true},
		{"x_above_max", kernel.LocationMaxX + 1, 10, true},
		{"y_above_max", 10, kernel.LocationMaxY + 1, true},
		{"both_out_of_range", -3, 99, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.x, tt.y)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.x, loc.X())
			assert.Equal(t, tt.y, loc.Y())
		})
	}
}

func TestLocation_Validate(t *testing.T) {
	var zero kernel.Location

	require.Error(t, zero.Validate())

	loc, err := kernel.NewLocation(5, 5)
	require.NoError(t, err)
	require.NoError(t, loc.Validate())
}

func TestLocation_Distance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 kernel.Coordinate
		want           int
	}{
		{"same_cell", 5, 5, 5, 5, 0},
		{"horizontal", 1, 1, 4, 1, 3},
		{"vertical", 1, 1, 1, 6, 5},
		{"diagonal", 1, 1, 4, 5, 7},
		{"reverse_direction", 10, 10, 2, 3, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := kernel.NewLocation(tt.x1, tt.y1)
			require.NoError(t, err)
			b, err := kernel.NewLocation(tt.x2, tt.y2)
			require.NoError(t, err)

			got, err := a.Distance(b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Manhattan distance is symmetric.
			back, err := b.Distance(a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, back)
		})
	}

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var zero kernel.Location
		valid, err := kernel.NewLocation(3, 3)
		require.NoError(t, err)

		_, err = valid.Distance(zero)
		require.Error(t, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)
	b, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)
	c, err := kernel.NewLocation(9, 7)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestLocation_String(t *testing.T) {
	loc, err := kernel.NewLocation(3, 8)
	require.NoError(t, err)
	assert.Equal(t, "Location(3,8)", loc.String())
}
