package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Draws a number from the sequence when the command carries none, builds
// the aggregate in pending status and persists it transactionally, so a
// consumed sequence value rolls back together with a failed insert.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires a CreateOrderUoWFactory so the repository and the
// number sequence share one transaction.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// aggregate. Field validation happens in the aggregate constructor, which
// reports every invalid field at once.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	number := cmd.Number()
	if number.IsZero() {
		next, err := uow.OrderNumberSequence().Next(ctx)
		if err != nil {
			return nil, err
		}
		number = next
	}

	aggregate, err := order.NewOrder(
		number,
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.Product(),
		cmd.Quantity(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
