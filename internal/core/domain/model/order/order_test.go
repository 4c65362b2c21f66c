package order_test

import (
	"testing"
	"time"

	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, line string, x, y kernel.Coordinate) kernel.Address {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	addr, err := kernel.NewAddress(line, loc)
	require.NoError(t, err)
	return addr
}

var (
	testPickupTime = time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)
	testReturnTime = time.Date(2026, time.May, 30, 15, 0, 0, 0, time.UTC)
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		5,
		200,
		testAddress(t, "12 Dorm Lane", 3, 3),
		testAddress(t, "Warehouse 1", 20, 20),
		testPickupTime,
		testReturnTime,
		"",
	)
	require.NoError(t, err)
	return o
}

func advanceToInStorage(t *testing.T, o *order.Order) {
	t.Helper()
	require.NoError(t, o.Accept())
	require.NoError(t, o.MarkPickedUp())
	require.NoError(t, o.MarkInStorage())
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_and_active", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.IsActive())
		assert.Nil(t, o.ReturnAddress())
		assert.Nil(t, o.ActualReturnTime())
		require.NoError(t, o.Validate())
	})

	t.Run("return_time_must_follow_pickup_time", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), 5, 200,
			testAddress(t, "a", 1, 1), testAddress(t, "b", 2, 2),
			testReturnTime, testPickupTime, // swapped
			"",
		)
		require.Error(t, err)
	})

	t.Run("rejects_non_positive_volume_and_price", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), 0, 0,
			testAddress(t, "a", 1, 1), testAddress(t, "b", 2, 2),
			testPickupTime, testReturnTime, "",
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_StorageProjection(t *testing.T) {
	t.Run("follows_the_storage_job_lifecycle", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.StatusAccepted, o.Status())

		require.NoError(t, o.MarkPickedUp())
		assert.Equal(t, order.StatusPickedUp, o.Status())

		require.NoError(t, o.MarkInStorage())
		assert.Equal(t, order.StatusInStorage, o.Status())
		assert.True(t, o.IsActive())
	})

	t.Run("pickup_requires_acceptance_first", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.MarkPickedUp()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("storage_requires_pickup_first", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())
		err := o.MarkInStorage()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_ReturnProjection(t *testing.T) {
	t.Run("return_acceptance_and_completion", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.StatusAccepted, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("cancelled_return_job_rewinds_to_in_storage", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)
		require.NoError(t, o.Accept())

		require.NoError(t, o.ReturnToStorage())
		assert.Equal(t, order.StatusInStorage, o.Status())
	})

	t.Run("cancelled_unaccepted_return_job_keeps_in_storage", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)

		// The return job was cancelled before any mover took it, so the
		// order never left InStorage.
		require.NoError(t, o.ReturnToStorage())
		assert.Equal(t, order.StatusInStorage, o.Status())
	})

	t.Run("complete_requires_an_accepted_return", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)
		err := o.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_CancelByStudent(t *testing.T) {
	t.Run("owner_cancels_pending_order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.CancelByStudent(o.StudentID()))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("non_owner_is_unauthorized", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.CancelByStudent(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("accepted_order_reports_invalid_state", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())

		err := o.CancelByStudent(o.StudentID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.StatusAccepted, o.Status())
	})

	t.Run("in_storage_order_reports_invalid_state", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)

		err := o.CancelByStudent(o.StudentID())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cancelled_order_reports_already_cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.CancelByStudent(o.StudentID()))

		err := o.CancelByStudent(o.StudentID())
		require.ErrorIs(t, err, errs.ErrAlreadyCancelled)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cascade_cancels_in_progress_order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("completed_order_cannot_be_cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)
		require.NoError(t, o.Accept())
		require.NoError(t, o.Complete())

		err := o.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancelling_twice_reports_already_cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Cancel()
		require.ErrorIs(t, err, errs.ErrAlreadyCancelled)
	})
}

func TestOrder_ScheduleReturn(t *testing.T) {
	actual := testReturnTime.Add(-48 * time.Hour)

	t.Run("records_time_and_keeps_student_address_by_default", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)

		require.NoError(t, o.ScheduleReturn(nil, actual))

		require.NotNil(t, o.ActualReturnTime())
		assert.True(t, o.ActualReturnTime().Equal(actual))
		assert.Nil(t, o.ReturnAddress())
		assert.Equal(t, o.StudentAddress(), o.EffectiveReturnAddress())
	})

	t.Run("override_address_becomes_the_effective_one", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)
		addr := testAddress(t, "7 New Flat Rd", 9, 9)

		require.NoError(t, o.ScheduleReturn(&addr, actual))

		require.NotNil(t, o.ReturnAddress())
		assert.Equal(t, addr, o.EffectiveReturnAddress())
	})

	t.Run("fails_unless_goods_are_in_storage", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.ScheduleReturn(nil, actual)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("requires_an_actual_return_time", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceToInStorage(t, o)
		err := o.ScheduleReturn(nil, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_ReturnDaysDifference(t *testing.T) {
	o := newPendingOrder(t)

	assert.Equal(t, -2, o.ReturnDaysDifference(testReturnTime.Add(-48*time.Hour)))
	assert.Equal(t, 3, o.ReturnDaysDifference(testReturnTime.Add(72*time.Hour)))
	assert.Equal(t, 0, o.ReturnDaysDifference(testReturnTime))
	// Partial days do not count against either side.
	assert.Equal(t, 0, o.ReturnDaysDifference(testReturnTime.Add(12*time.Hour)))
	assert.Equal(t, 0, o.ReturnDaysDifference(testReturnTime.Add(-12*time.Hour)))
}

func TestRestoreOrder(t *testing.T) {
	student := testAddress(t, "12 Dorm Lane", 3, 3)
	warehouse := testAddress(t, "Warehouse 1", 20, 20)
	now := time.Now().UTC()

	t.Run("restores_in_storage_order", func(t *testing.T) {
		ret := testAddress(t, "7 New Flat Rd", 9, 9)
		actual := testReturnTime.Add(-24 * time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.StatusInStorage,
			5, 200, student, warehouse, &ret,
			testPickupTime, testReturnTime, &actual,
			"key-1", now, now,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInStorage, o.Status())
		assert.Equal(t, "key-1", o.IdempotencyKey())
		assert.Equal(t, ret, o.EffectiveReturnAddress())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), order.StatusUnknown,
			5, 200, student, warehouse, nil,
			testPickupTime, testReturnTime, nil,
			"", now, now,
		)
		require.Error(t, err)
	})
}
