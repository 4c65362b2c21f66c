package commands

import (
	"context"
	"log/slog"

	"moveout/internal/core/ports"
)

// RequestArrivalConfirmationCommandHandler moves a job to awaiting-student-
// confirmation and signals the student. The mover cannot advance past this
// point on their own; only the student's confirmation does that.
type RequestArrivalConfirmationCommandHandler struct {
	uowFactory JobUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewRequestArrivalConfirmationCommandHandler creates a handler for arrival
// declarations.
func NewRequestArrivalConfirmationCommandHandler(
	uowFactory JobUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) RequestArrivalConfirmationCommandHandler {
	return RequestArrivalConfirmationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the arrival declaration.
func (h *RequestArrivalConfirmationCommandHandler) Handle(ctx context.Context, cmd RequestArrivalConfirmationCommand) error {
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

	theJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = theJob.RequestArrivalConfirmation(cmd.MoverID()); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.TopicArrivalSignal, arrivalEvent{
		JobID:     theJob.ID().String(),
		StudentID: theJob.StudentID().String(),
		MoverID:   cmd.MoverID().String(),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			"topic", ports.TopicArrivalSignal, "error", err)
	}

	return nil
}
