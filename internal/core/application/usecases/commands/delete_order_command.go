package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to soft-delete an order.
// The row survives, but the order disappears from every read, list and
// update path. The retention job purges it for good later.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to soft-delete the order
// identified by number.
func NewDeleteOrderCommand(number kernel.OrderNumber) (DeleteOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		number: number,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderCommandIsNotConstructed if validation fails.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Number returns the identifier of the order to delete.
func (c DeleteOrderCommand) Number() kernel.OrderNumber {
	return c.number
}
