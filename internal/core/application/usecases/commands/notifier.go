package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// StatusNotifier publishes order status changes to interested consumers.
// Handlers call it after a successful commit; a notification failure never
// rolls back the already-committed change, it is logged and dropped.
type StatusNotifier interface {
	OrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}

// NopStatusNotifier discards notifications. Used when no broker is
// configured and in tests.
type NopStatusNotifier struct{}

func (NopStatusNotifier) OrderStatusChanged(_ context.Context, _ *order.Order) error {
	return nil
}
