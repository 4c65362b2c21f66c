package commands

import (
	"context"
	"log/slog"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"
)

// ConfirmHandoffCommandHandler applies the student's confirmation and the
// projection it implies. A storage job proceeds to PickedUp and the order
// follows; a return job completes, the order completes with it, and the
// mover is credited the job's price in the same transaction.
type ConfirmHandoffCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewConfirmHandoffCommandHandler creates a handler for student
// confirmations.
func NewConfirmHandoffCommandHandler(
	uowFactory UoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) ConfirmHandoffCommandHandler {
	return ConfirmHandoffCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the confirmation.
func (h *ConfirmHandoffCommandHandler) Handle(ctx context.Context, cmd ConfirmHandoffCommand) error {
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

	theJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = theJob.ConfirmByStudent(cmd.StudentID()); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}

	theOrder, err := orderRepo.Get(ctx, theJob.OrderID())
	if err != nil {
		return err
	}

	completed := theJob.Status() == job.StatusCompleted
	if completed {
		if err = theOrder.Complete(); err != nil {
			return err
		}
		if err = h.creditMover(ctx, uow, theJob); err != nil {
			return err
		}
	} else {
		if err = theOrder.MarkPickedUp(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if completed {
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
	}

	return nil
}

func (h *ConfirmHandoffCommandHandler) creditMover(ctx context.Context, uow UoW, theJob *job.Job) error {
	if theJob.Mover() == nil {
		return errs.NewInvalidStateError("job", theJob.ID().String(), "completed without mover")
	}

	moverRepo := uow.MoverRepository()
	theMover, err := moverRepo.Get(ctx, *theJob.Mover())
	if err != nil {
		return err
	}
	if err = theMover.Credit(theJob.Price()); err != nil {
		return err
	}
	return moverRepo.Update(ctx, theMover)
}
