package commands

import (
	"context"
	"log/slog"

	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"
)

// CompleteStorageDeliveryCommandHandler finishes a storage job at the
// warehouse: the job completes, the order moves to InStorage, and the
// mover is credited, all in one transaction.
type CompleteStorageDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewCompleteStorageDeliveryCommandHandler creates a handler for warehouse
// drop-offs.
func NewCompleteStorageDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CompleteStorageDeliveryCommandHandler {
	return CompleteStorageDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the drop-off.
func (h *CompleteStorageDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteStorageDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	orderRepo := uow.OrderRepository()
	moverRepo := uow.MoverRepository()

	theJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = theJob.CompleteDelivery(cmd.MoverID()); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}

	theOrder, err := orderRepo.Get(ctx, theJob.OrderID())
	if err != nil {
		return err
	}
	if err = theOrder.MarkInStorage(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	if theJob.Mover() == nil {
		return errs.NewInvalidStateError("job", theJob.ID().String(), "completed without mover")
	}
	theMover, err := moverRepo.Get(ctx, *theJob.Mover())
	if err != nil {
		return err
	}
	if err = theMover.Credit(theJob.Price()); err != nil {
		return err
	}
	if err = moverRepo.Update(ctx, theMover); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.TopicJobCompleted, jobEvent{
		JobID:         theJob.ID().String(),
		OrderID:       theOrder.ID().String(),
		JobType:       theJob.JobType().String(),
		Price:         theJob.Price(),
		ScheduledTime: theJob.ScheduledTime(),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			"topic", ports.TopicJobCompleted, "error", err)
	}

	return nil
}
