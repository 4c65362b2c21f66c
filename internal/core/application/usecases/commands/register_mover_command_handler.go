package commands

import (
	"context"

	"moveout/internal/core/domain/model/mover"
)

// RegisterMoverCommandHandler persists a new mover.
type RegisterMoverCommandHandler struct {
	uowFactory MoverUoWFactory
}

// NewRegisterMoverCommandHandler creates a handler for mover registration.
func NewRegisterMoverCommandHandler(uowFactory MoverUoWFactory) RegisterMoverCommandHandler {
	return RegisterMoverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
func (h *RegisterMoverCommandHandler) Handle(ctx context.Context, cmd RegisterMoverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newMover, err := mover.NewMover(cmd.MoverID(), cmd.Name(), cmd.Location(), cmd.Availability())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MoverRepository().Add(ctx, newMover); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
