package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles soft deletion of orders.
// Deletion is status-independent: any order, including a delivered or
// cancelled one, can be soft-deleted.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order soft deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Deleting an already-deleted or
// unknown order reports ObjectNotFoundError, because soft-deleted orders
// are invisible to this path too.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().SoftDelete(ctx, cmd.Number()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
