package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Customer fields travel as a patch where nil means "leave unchanged";
// a status change travels separately so it always goes through the
// transition table. A command that changes nothing is rejected at
// construction.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	number             kernel.OrderNumber
	patch              order.Patch
	status             *order.Status
	cancellationReason string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update the order identified by
// number. rawStatus, when non-nil, must name a known status; the
// cancellation reason only applies to a transition into cancelled and is
// ignored otherwise. Returns errs.ErrEmptyUpdate when neither the patch nor
// the status carries a change.
func NewUpdateOrderCommand(
	number kernel.OrderNumber,
	patch order.Patch,
	rawStatus *string,
	cancellationReason string,
) (UpdateOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	if patch.IsZero() && rawStatus == nil {
		return UpdateOrderCommand{}, errs.ErrEmptyUpdate
	}

	cmd := UpdateOrderCommand{
		number: number,
		patch:  patch,

		guard: guard.NewConstructorGuard(),
	}

	if rawStatus != nil {
		status, err := order.StatusFromString(*rawStatus)
		if err != nil {
			return UpdateOrderCommand{}, err
		}
		cmd.status = &status
	}

	reason, err := order.ValidateCancellationReason(cancellationReason)
	if err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.cancellationReason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Number returns the identifier of the order to update.
func (c UpdateOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// Patch returns the customer-field changes.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

// Status returns the requested target status, nil when the update leaves
// the status alone.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// CancellationReason returns the trimmed cancellation reason, empty when
// none was supplied.
func (c UpdateOrderCommand) CancellationReason() string {
	return c.cancellationReason
}
