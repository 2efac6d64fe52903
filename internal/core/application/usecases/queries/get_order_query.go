// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its number.
// Soft-deleted orders are invisible to this query.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber("ORD-000042")
//	query, _ := NewGetOrderQuery(number)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.Number, resp.Status)
type GetOrderQuery struct {
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order identified by number.
func NewGetOrderQuery(number kernel.OrderNumber) (GetOrderQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		number: number,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Number returns the identifier of the order to fetch.
func (q GetOrderQuery) Number() kernel.OrderNumber {
	return q.number
}

// OrderResponse is the read-side projection of an order. The cancellation
// fields are nil for any order that is not cancelled.
type OrderResponse struct {
	Number             string
	CustomerName       string
	Phone              string
	Product            string
	Quantity           int
	Notes              string
	Status             string
	CancelledAt        *time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
