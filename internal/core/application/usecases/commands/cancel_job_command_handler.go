package commands

import (
	"context"
	"log/slog"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"
)

// CancelJobCommandHandler withdraws a single job and applies the projection
// its type implies. Cancelling a storage job takes the whole order with it,
// including a full refund, since the student's goods never reached storage.
// Cancelling a return job merely rewinds the order to InStorage so a fresh
// return can be scheduled.
type CancelJobCommandHandler struct {
	uowFactory OrderJobUoWFactory
	payments   ports.PaymentClient
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewCancelJobCommandHandler creates a handler for job cancellation.
func NewCancelJobCommandHandler(
	uowFactory OrderJobUoWFactory,
	payments ports.PaymentClient,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation.
func (h *CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
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
	if err = h.authorize(theJob, cmd.ActorID()); err != nil {
		return err
	}
	if err = theJob.Cancel(); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}

	theOrder, err := orderRepo.Get(ctx, theJob.OrderID())
	if err != nil {
		return err
	}

	refund := 0.0
	if theJob.JobType() == job.TypeStorage {
		if err = theOrder.Cancel(); err != nil {
			return err
		}
		refund = theOrder.TotalPrice()
	} else {
		if err = theOrder.ReturnToStorage(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	if refund > 0 {
		if err = h.payments.Refund(ctx, theOrder.StudentID().String(), refund,
			"storage job cancellation"); err != nil {
			return errs.NewPaymentFailedError("refund", refund, err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if refund > 0 {
		if err = h.publisher.Publish(ctx, ports.TopicOrderCancelled, orderEvent{
			OrderID:   theOrder.ID().String(),
			StudentID: theOrder.StudentID().String(),
			Status:    theOrder.Status().String(),
			Refund:    refund,
		}); err != nil {
			h.logger.WarnContext(ctx, "notification publish failed",
				"topic", ports.TopicOrderCancelled, "error", err)
		}
	}

	return nil
}

// authorize permits the order owner always, and the assigned mover once
// there is one.
func (h *CancelJobCommandHandler) authorize(theJob *job.Job, actorID kernel.UUID) error {
	if theJob.StudentID().IsEqual(actorID) {
		return nil
	}
	if theJob.Mover() != nil && theJob.Mover().IsEqual(actorID) {
		return nil
	}
	return errs.NewUnauthorizedError(actorID.String(), "job "+theJob.ID().String())
}
