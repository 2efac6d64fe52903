package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order.
// The order number is optional: a zero number instructs the handler to
// draw the next one from the sequence. Field content is validated by the
// aggregate constructor, which collects every failure at once.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", "Alice", "+1 555 123 4567", "Tea", nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created in %s status", created.Number(), created.Status())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number       kernel.OrderNumber
	customerName string
	phone        string
	product      string
	quantity     int
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// An empty rawNumber leaves the number zero so the handler generates one;
// a non-empty rawNumber must satisfy the order number format. A nil
// quantity is substituted with the default of one unit.
func NewCreateOrderCommand(
	rawNumber string,
	customerName string,
	phone string,
	product string,
	quantity *int,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		phone:        phone,
		product:      product,
		quantity:     order.DefaultQuantity,
		notes:        notes,

		guard: guard.NewConstructorGuard(),
	}

	if rawNumber != "" {
		number, err := kernel.NewOrderNumber(rawNumber)
		if err != nil {
			return CreateOrderCommand{}, err
		}
		cmd.number = number
	}

	if quantity != nil {
		cmd.quantity = *quantity
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Number returns the caller-supplied order number, zero when the handler
// should generate one.
func (c CreateOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// CustomerName returns the customer name as received.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the contact phone as received.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Product returns the product name as received.
func (c CreateOrderCommand) Product() string {
	return c.product
}

// Quantity returns the requested quantity, defaulted when omitted.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Notes returns the optional notes as received.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}
