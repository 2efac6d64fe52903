package commands

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles partial updates of existing orders.
// Applies the patch all-or-nothing, routes status changes through the
// transition table, and publishes a notification after a committed status
// change.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   StatusNotifier
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, notifier StatusNotifier) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the update command and returns the updated aggregate.
// The order is re-read inside the transaction, so the decision about the
// status transition is made against current state; a concurrent writer
// surfaces as a ConcurrentModificationError from the repository.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()
	if target := cmd.Status(); target != nil {
		if err = aggregate.ChangeStatus(*target, cmd.CancellationReason(), time.Now()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if aggregate.Status() != previousStatus {
		if err = h.notifier.OrderStatusChanged(ctx, aggregate); err != nil {
			slog.Warn("failed to publish status change",
				"order", aggregate.Number().String(), "error", err)
		}
	}

	return aggregate, nil
}
