package commands

import (
	"context"
	"log/slog"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"
)

// CreateReturnJobResult reports the outcome of a return request. Exactly one
// of Refund and LateFee is non-zero when the actual return time differs from
// the agreed one by at least a day. AlreadyExists means a live return job
// was already in place and ReturnJobID identifies it.
type CreateReturnJobResult struct {
	ReturnJobID   kernel.UUID
	AlreadyExists bool
	Refund        float64
	LateFee       float64
}

// CreateReturnJobCommandHandler schedules the return of stored goods.
//
// The per-diem settlement happens here: an early return issues a refund, a
// late one requires a successful charge before the return job is created.
// A failed charge therefore leaves no return job behind. The handler is
// idempotent: a second request against an order with a live return job
// reports the existing job instead of creating another.
type CreateReturnJobCommandHandler struct {
	uowFactory OrderJobUoWFactory
	payments   ports.PaymentClient
	publisher  ports.NotificationPublisher
	pricing    Pricing
	logger     *slog.Logger
}

// NewCreateReturnJobCommandHandler creates a handler for return requests.
func NewCreateReturnJobCommandHandler(
	uowFactory OrderJobUoWFactory,
	payments ports.PaymentClient,
	publisher ports.NotificationPublisher,
	pricing Pricing,
	logger *slog.Logger,
) CreateReturnJobCommandHandler {
	return CreateReturnJobCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		publisher:  publisher,
		pricing:    pricing,
		logger:     logger,
	}
}

// Handle processes the return request.
func (h *CreateReturnJobCommandHandler) Handle(ctx context.Context, cmd CreateReturnJobCommand) (CreateReturnJobResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateReturnJobResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateReturnJobResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	jobRepo := uow.JobRepository()

	theOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CreateReturnJobResult{}, err
	}
	if !theOrder.StudentID().IsEqual(cmd.StudentID()) {
		return CreateReturnJobResult{}, errs.NewUnauthorizedError(
			cmd.StudentID().String(), "order "+theOrder.ID().String())
	}

	orderJobs, err := jobRepo.GetByOrder(ctx, theOrder.ID())
	if err != nil {
		return CreateReturnJobResult{}, err
	}
	for _, j := range orderJobs {
		if j.JobType() == job.TypeReturn && j.Status() != job.StatusCancelled {
			return CreateReturnJobResult{ReturnJobID: j.ID(), AlreadyExists: true}, nil
		}
	}

	// Validates the order is actually in storage before any money moves.
	if err = theOrder.ScheduleReturn(cmd.ReturnAddress(), cmd.ActualReturnTime()); err != nil {
		return CreateReturnJobResult{}, err
	}

	result := CreateReturnJobResult{}
	days := theOrder.ReturnDaysDifference(cmd.ActualReturnTime())
	adjustment := h.pricing.ReturnAdjustment(days)

	switch {
	case days > 0:
		if err = h.payments.Charge(ctx, theOrder.StudentID().String(), adjustment,
			"late return fee"); err != nil {
			return CreateReturnJobResult{}, errs.NewPaymentFailedError("charge", adjustment, err)
		}
		result.LateFee = adjustment
	case days < 0:
		if err = h.payments.Refund(ctx, theOrder.StudentID().String(), adjustment,
			"early return refund"); err != nil {
			return CreateReturnJobResult{}, errs.NewPaymentFailedError("refund", adjustment, err)
		}
		result.Refund = adjustment
	}

	returnJob, err := job.NewJob(
		kernel.NewUUID(), theOrder.ID(), theOrder.StudentID(),
		job.TypeReturn, theOrder.Volume(),
		h.pricing.MoverJobPrice(theOrder.TotalPrice()),
		theOrder.WarehouseAddress(), theOrder.EffectiveReturnAddress(),
		cmd.ActualReturnTime(),
	)
	if err != nil {
		return CreateReturnJobResult{}, err
	}

	if err = jobRepo.Add(ctx, returnJob); err != nil {
		return CreateReturnJobResult{}, err
	}
	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return CreateReturnJobResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CreateReturnJobResult{}, err
	}

	if err = h.publisher.Publish(ctx, ports.TopicJobAvailable, jobEvent{
		JobID:         returnJob.ID().String(),
		OrderID:       theOrder.ID().String(),
		JobType:       returnJob.JobType().String(),
		Price:         returnJob.Price(),
		ScheduledTime: returnJob.ScheduledTime(),
	}); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			"topic", ports.TopicJobAvailable, "error", err)
	}

	result.ReturnJobID = returnJob.ID()
	return result, nil
}
