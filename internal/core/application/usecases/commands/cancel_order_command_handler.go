package commands

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation.
// Unlike a status update to cancelled, this operation distinguishes a
// repeated cancellation (AlreadyCancelledError with the original metadata)
// from a delivered order (TerminalStateError), and records a different
// default reason.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   StatusNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier StatusNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command and returns the cancelled
// aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Cancel(cmd.Reason(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.OrderStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish status change",
			"order", aggregate.Number().String(), "error", err)
	}

	return aggregate, nil
}
