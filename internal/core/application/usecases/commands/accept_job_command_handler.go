package commands

import (
	"context"

	"moveout/internal/core/domain/model/job"
)

// AcceptJobCommandHandler is the system's one true concurrency hot spot:
// two movers may claim the same job within milliseconds. The handler applies
// the acceptance on the aggregate, then persists it through the repository's
// TryAssign conditional write, which flips the row only if it is still
// Available. Exactly one concurrent caller wins; every loser gets a typed
// AlreadyAssigned and retries against a refreshed list, never against the
// same job blindly.
type AcceptJobCommandHandler struct {
	uowFactory OrderJobUoWFactory
}

// NewAcceptJobCommandHandler creates a handler for job acceptance.
func NewAcceptJobCommandHandler(uowFactory OrderJobUoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the accepted job on success.
func (h *AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	claimed, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}
	if err = claimed.Accept(cmd.MoverID()); err != nil {
		return nil, err
	}
	if err = jobRepo.TryAssign(ctx, claimed); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	theOrder, err := orderRepo.Get(ctx, claimed.OrderID())
	if err != nil {
		return nil, err
	}
	if err = theOrder.Accept(); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
