package commands_test

import (
	"testing"

	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)

	cmd, err := commands.NewAcceptJobCommand(theJob.ID(), moverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once(),
		jobRepo.On("TryAssign", ctx, theJob).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once(),
		orderRepo.On("Update", ctx, theOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAcceptJobCommandHandler(orderJobUoWFactory{uow})
	won, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusAccepted, won.Status())
	require.NotNil(t, won.Mover())
	assert.True(t, won.Mover().IsEqual(moverID))
	assert.Equal(t, order.StatusAccepted, theOrder.Status())
	uow.AssertExpectations(t)
}

func TestAcceptJobCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	moverID := kernel.NewUUID()
	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)

	cmd, err := commands.NewAcceptJobCommand(theJob.ID(), moverID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()
	// The conditional write finds the row no longer Available.
	jobRepo.On("TryAssign", ctx, theJob).
		Return(errs.NewAlreadyAssignedError(theJob.ID().String())).Once()

	handler := commands.NewAcceptJobCommandHandler(orderJobUoWFactory{uow})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptJobCommandHandler_Handle_AlreadyAcceptedAggregate(t *testing.T) {
	ctx := t.Context()
	studentID := kernel.NewUUID()
	theOrder := fixturePendingOrder(t, studentID)
	theJob := fixtureAvailableJob(t, theOrder.ID(), studentID, job.TypeStorage)
	require.NoError(t, theJob.Accept(kernel.NewUUID()))

	cmd, err := commands.NewAcceptJobCommand(theJob.ID(), kernel.NewUUID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("Get", ctx, theJob.ID()).Return(theJob, nil).Once()

	handler := commands.NewAcceptJobCommandHandler(orderJobUoWFactory{uow})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	jobRepo.AssertNotCalled(t, "TryAssign", mock.Anything, mock.Anything)
}
