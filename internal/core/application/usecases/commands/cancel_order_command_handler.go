package commands

import (
	"context"
	"log/slog"

	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"
)

// CancelOrderCommandHandler withdraws a Pending order: cancels the order,
// cascades the cancellation to its non-terminal jobs, and refunds the full
// checkout price. Orders with work in progress cannot be cancelled; the
// aggregate rejects those with InvalidState before anything changes.
type CancelOrderCommandHandler struct {
	uowFactory OrderJobUoWFactory
	payments   ports.PaymentClient
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderJobUoWFactory,
	payments ports.PaymentClient,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	jobRepo := uow.JobRepository()

	theOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = theOrder.CancelByStudent(cmd.StudentID()); err != nil {
		return err
	}

	orderJobs, err := jobRepo.GetByOrder(ctx, theOrder.ID())
	if err != nil {
		return err
	}
	for _, j := range orderJobs {
		if j.Status().IsTerminal() {
			continue
		}
		if err = j.Cancel(); err != nil {
			return err
		}
		if err = jobRepo.Update(ctx, j); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	// The refund happens before commit so a declined refund leaves the
	// order untouched rather than cancelled-but-unrefunded.
	if err = h.payments.Refund(ctx, theOrder.StudentID().String(),
		theOrder.TotalPrice(), "order cancellation"); err != nil {
		return errs.NewPaymentFailedError("refund", theOrder.TotalPrice(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.TopicOrderCancelled, orderEvent{
		OrderID:   theOrder.ID().String(),
		StudentID: theOrder.StudentID().String(),
		Status:    theOrder.Status().String(),
		Refund:    theOrder.TotalPrice(),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			"topic", ports.TopicOrderCancelled, "error", err)
	}

	return nil
}
