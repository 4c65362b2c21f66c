package commands_test

import (
	"testing"
	"time"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	fixturePickupTime = time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)
	fixtureReturnTime = time.Date(2026, time.May, 30, 15, 0, 0, 0, time.UTC)
)

func fixtureAddress(t *testing.T, line string, x, y kernel.Coordinate) kernel.Address {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	addr, err := kernel.NewAddress(line, loc)
	require.NoError(t, err)
	return addr
}

func fixturePendingOrder(t *testing.T, studentID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), studentID, 5, 200,
		fixtureAddress(t, "12 Dorm Lane", 3, 3),
		fixtureAddress(t, "Warehouse 1", 20, 20),
		fixturePickupTime, fixtureReturnTime, "",
	)
	require.NoError(t, err)
	return o
}

func fixtureInStorageOrder(t *testing.T, studentID kernel.UUID) *order.Order {
	t.Helper()
	o := fixturePendingOrder(t, studentID)
	require.NoError(t, o.Accept())
	require.NoError(t, o.MarkPickedUp())
	require.NoError(t, o.MarkInStorage())
	return o
}

func fixtureAvailableJob(t *testing.T, orderID, studentID kernel.UUID, jobType job.Type) *job.Job {
	t.Helper()
	j, err := job.NewJob(
		kernel.NewUUID(), orderID, studentID, jobType, 5, 40,
		fixtureAddress(t, "12 Dorm Lane", 3, 3),
		fixtureAddress(t, "Warehouse 1", 20, 20),
		fixturePickupTime,
	)
	require.NoError(t, err)
	return j
}
