package commands

import (
	"context"
	"time"
)

// PurgeDeletedOrdersCommandHandler hard-deletes soft-deleted orders once
// their retention window has passed. Hard deletion exists only on this
// path; the HTTP API never removes rows.
type PurgeDeletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeletedOrdersCommandHandler creates a handler for the retention
// sweep.
func NewPurgeDeletedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeletedOrdersCommandHandler {
	return PurgeDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one sweep and returns the number of orders removed.
// The whole batch commits atomically; a failed delete rolls back the run
// and the next scheduled sweep picks the rows up again.
func (h *PurgeDeletedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().Add(-cmd.Retention())

	numbers, err := orderRepo.FindDeletedBefore(ctx, cutoff, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	for _, number := range numbers {
		if err = orderRepo.HardDelete(ctx, number); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(numbers), nil
}
