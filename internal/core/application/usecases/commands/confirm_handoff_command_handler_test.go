package commands_test

import (
	"testing"

	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/mover"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureMover(t *testing.T, moverID kernel.UUID) *mover.Mover {
	t.Helper()
	loc, err := kernel.NewLocation(10, 10)
	require.NoError(t, err)
	m, err := mover.NewMover(moverID, "Sam", loc, mover.AlwaysAvailable())
	require.NoError(t, err)
	return m
}

func TestConfirmHandoffCommandHandler_Handle_StorageJob(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	theOrder := fixturePendingOrder(t, studentID)
	require.NoError(t, theOrder.Accept())

	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)
	require.NoError(t, theJob.Accept(moverID))
	require.NoError(t, theJob.RequestArrivalConfirmation(moverID))

	cmd, err := commands.NewConfirmHandoffCommand(theJob.ID(), studentID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()
	jobRepo.On("Update", ctx, theJob).Return(nil).Once()
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()

	publisher := new(MockNotificationPublisher)

	handler := commands.NewConfirmHandoffCommandHandler(
		uowFactory{uow}, publisher, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, job.StatusPickedUp, theJob.Status())
	assert.Equal(t, order.StatusPickedUp, theOrder.Status())
	// No completion event for a pickup confirmation.
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestConfirmHandoffCommandHandler_Handle_ReturnJobCompletesAndCreditsMover(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	theOrder := fixtureInStorageOrder(t, studentID)
	require.NoError(t, theOrder.Accept())

	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeReturn)
	require.NoError(t, theJob.Accept(moverID))
	require.NoError(t, theJob.RequestArrivalConfirmation(moverID))

	theMover := fixtureMover(t, moverID)

	cmd, err := commands.NewConfirmHandoffCommand(theJob.ID(), studentID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	moverRepo := new(MockMoverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MoverRepository").Return(moverRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()
	jobRepo.On("Update", ctx, theJob).Return(nil).Once()
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()
	moverRepo.On("Get", ctx, moverID).Return(theMover, nil).Once()
	moverRepo.On("Update", ctx, theMover).Return(nil).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, ports.TopicJobCompleted, mock.Anything).Return(nil).Once()

	handler := commands.NewConfirmHandoffCommandHandler(
		uowFactory{uow}, publisher, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, job.StatusCompleted, theJob.Status())
	assert.Equal(t, order.StatusCompleted, theOrder.Status())
	assert.InDelta(t, theJob.Price(), theMover.Balance(), 0.001)
	publisher.AssertExpectations(t)
	moverRepo.AssertExpectations(t)
}

func TestConfirmHandoffCommandHandler_Handle_WrongStudent(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)
	require.NoError(t, theJob.Accept(moverID))
	require.NoError(t, theJob.RequestArrivalConfirmation(moverID))

	cmd, err := commands.NewConfirmHandoffCommand(theJob.ID(), kernel.NewUUID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()

	handler := commands.NewConfirmHandoffCommandHandler(
		uowFactory{uow}, new(MockNotificationPublisher), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, job.StatusAwaitingStudentConfirmation, theJob.Status())
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmHandoffCommandHandler_Handle_NotAwaitingConfirmation(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)

	cmd, err := commands.NewConfirmHandoffCommand(theJob.ID(), studentID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()

	handler := commands.NewConfirmHandoffCommandHandler(
		uowFactory{uow}, new(MockNotificationPublisher), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
