package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order through the
// dedicated cancellation operation. The reason is optional; a default is
// recorded when it is empty.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber
	reason string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order identified by
// number. The reason is trimmed and bounded; empty is allowed.
func NewCancelOrderCommand(number kernel.OrderNumber, reason string) (CancelOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	trimmed, err := order.ValidateCancellationReason(reason)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		number: number,
		reason: trimmed,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Number returns the identifier of the order to cancel.
func (c CancelOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// Reason returns the trimmed cancellation reason, empty when none was
// supplied.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
