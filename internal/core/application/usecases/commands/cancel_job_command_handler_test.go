package commands_test

import (
	"testing"

	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelJobCommandHandler_Handle_StudentCancelsStorageJob(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	theOrder := fixturePendingOrder(t, studentID)
	require.NoError(t, theOrder.Accept())

	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)
	require.NoError(t, theJob.Accept(moverID))

	cmd, err := commands.NewCancelJobCommand(theJob.ID(), studentID)
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

	payments := new(MockPaymentClient)
	payments.On("Refund", ctx, studentID.String(), theOrder.TotalPrice(),
		"storage job cancellation").Return(nil).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, ports.TopicOrderCancelled, mock.Anything).Return(nil).Once()

	handler := commands.NewCancelJobCommandHandler(
		orderJobUoWFactory{uow}, payments, publisher, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, job.StatusCancelled, theJob.Status())
	assert.Equal(t, order.StatusCancelled, theOrder.Status())
	payments.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelJobCommandHandler_Handle_MoverCancelsReturnJob(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	theOrder := fixtureInStorageOrder(t, studentID)
	require.NoError(t, theOrder.Accept())

	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeReturn)
	require.NoError(t, theJob.Accept(moverID))

	cmd, err := commands.NewCancelJobCommand(theJob.ID(), moverID)
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

	payments := new(MockPaymentClient)
	publisher := new(MockNotificationPublisher)

	handler := commands.NewCancelJobCommandHandler(
		orderJobUoWFactory{uow}, payments, publisher, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, job.StatusCancelled, theJob.Status())
	assert.Equal(t, order.StatusInStorage, theOrder.Status())
	// No money moved for a return cancellation.
	payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelJobCommandHandler_Handle_StudentCancelsUnacceptedReturnJob(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()

	theOrder := fixtureInStorageOrder(t, studentID)

	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeReturn)

	cmd, err := commands.NewCancelJobCommand(theJob.ID(), studentID)
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

	payments := new(MockPaymentClient)
	publisher := new(MockNotificationPublisher)

	handler := commands.NewCancelJobCommandHandler(
		orderJobUoWFactory{uow}, payments, publisher, discardLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	// No mover ever held the return job, so the order never left storage.
	assert.Equal(t, job.StatusCancelled, theJob.Status())
	assert.Equal(t, order.StatusInStorage, theOrder.Status())
	payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelJobCommandHandler_Handle_UnrelatedActor(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()

	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)
	require.NoError(t, theJob.Accept(moverID))

	cmd, err := commands.NewCancelJobCommand(theJob.ID(), kernel.NewUUID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("OrderRepository").Return(new(MockOrderRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()

	handler := commands.NewCancelJobCommandHandler(
		orderJobUoWFactory{uow}, new(MockPaymentClient),
		new(MockNotificationPublisher), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, job.StatusAccepted, theJob.Status())
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelJobCommandHandler_Handle_RefundFailure(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()

	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)

	cmd, err := commands.NewCancelJobCommand(theJob.ID(), studentID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()
	jobRepo.On("Update", ctx, theJob).Return(nil).Once()
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()

	payments := new(MockPaymentClient)
	payments.On("Refund", ctx, studentID.String(), theOrder.TotalPrice(),
		"storage job cancellation").Return(assert.AnError).Once()

	handler := commands.NewCancelJobCommandHandler(
		orderJobUoWFactory{uow}, payments, new(MockNotificationPublisher), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPaymentFailed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
