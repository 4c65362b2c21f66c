package commands

import (
	"context"
	"errors"
	"log/slog"

	"moveout/internal/core/domain/model/job"
	"moveout/internal/core/domain/model/kernel"
	"moveout/internal/core/domain/model/order"
	"moveout/internal/core/ports"
	"moveout/internal/pkg/errs"
)

// CreateOrderResult reports the outcome of a checkout. AlreadyExists means
// the idempotency key matched an earlier checkout and OrderID identifies
// that order; nothing new was created.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	StorageJobID  kernel.UUID
	AlreadyExists bool
}

// CreateOrderCommandHandler creates the order and its storage job in one
// transaction, then notifies movers that a job is up.
//
// The one-active-order-per-student rule is checked here and enforced again
// by the storage layer's conditional insert, so two concurrent checkouts by
// the same student cannot both slip through the application-level read.
type CreateOrderCommandHandler struct {
	uowFactory OrderJobUoWFactory
	validator  ports.AddressValidator
	publisher  ports.NotificationPublisher
	pricing    Pricing
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderJobUoWFactory,
	validator ports.AddressValidator,
	publisher ports.NotificationPublisher,
	pricing Pricing,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		publisher:  publisher,
		pricing:    pricing,
		logger:     logger,
	}
}

// Handle processes the checkout command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	studentAddress, err := h.validator.Validate(ctx, cmd.StudentAddress())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if cmd.IdempotencyKey() != "" {
		existing, lookupErr := orderRepo.GetByIdempotencyKey(ctx, cmd.IdempotencyKey())
		switch {
		case lookupErr == nil:
			return h.replayResult(ctx, uow, existing)
		case !errors.Is(lookupErr, errs.ErrObjectNotFound):
			return CreateOrderResult{}, lookupErr
		}
	}

	active, err := orderRepo.GetActiveByStudent(ctx, cmd.StudentID())
	if err == nil {
		return CreateOrderResult{}, errs.NewInvalidStateError(
			"order", active.ID().String(), active.Status().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.StudentID(), cmd.Volume(), cmd.TotalPrice(),
		studentAddress, cmd.WarehouseAddress(),
		cmd.PickupTime(), cmd.ReturnTime(), cmd.IdempotencyKey(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	storageJob, err := job.NewJob(
		kernel.NewUUID(), newOrder.ID(), newOrder.StudentID(),
		job.TypeStorage, newOrder.Volume(),
		h.pricing.MoverJobPrice(newOrder.TotalPrice()),
		studentAddress, cmd.WarehouseAddress(), cmd.PickupTime(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.JobRepository().Add(ctx, storageJob); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.publish(ctx, ports.TopicOrderCreated, orderEvent{
		OrderID:   newOrder.ID().String(),
		StudentID: newOrder.StudentID().String(),
		Status:    newOrder.Status().String(),
	})
	h.publish(ctx, ports.TopicJobAvailable, jobEvent{
		JobID:         storageJob.ID().String(),
		OrderID:       newOrder.ID().String(),
		JobType:       storageJob.JobType().String(),
		Price:         storageJob.Price(),
		ScheduledTime: storageJob.ScheduledTime(),
	})

	return CreateOrderResult{OrderID: newOrder.ID(), StorageJobID: storageJob.ID()}, nil
}

// replayResult rebuilds the original checkout result for an idempotency
// replay, so the caller sees the same storage job id as the first attempt.
func (h *CreateOrderCommandHandler) replayResult(
	ctx context.Context,
	uow OrderJobUoW,
	existing *order.Order,
) (CreateOrderResult, error) {
	result := CreateOrderResult{OrderID: existing.ID(), AlreadyExists: true}

	orderJobs, err := uow.JobRepository().GetByOrder(ctx, existing.ID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	for _, j := range orderJobs {
		if j.JobType() == job.TypeStorage {
			result.StorageJobID = j.ID()
			break
		}
	}
	return result, nil
}

func (h *CreateOrderCommandHandler) publish(ctx context.Context, topic string, payload any) {
	if err := h.publisher.Publish(ctx, topic, payload); err != nil {
		h.logger.WarnContext(ctx, "notification publish failed",
			"topic", topic, "error", err)
	}
}
