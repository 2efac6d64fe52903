package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
)

// OrderNumberSequence issues order numbers from a monotonically increasing
// counter held at the persistence layer.
//
// The increment must be atomic: this is the one place where true
// read-modify-write serialization across all orders is mandatory, because
// the uniqueness of generated numbers depends on it. Two concurrent Next
// calls must never yield the same number.
//
// A failed increment surfaces as an error and aborts the creation; it never
// produces a partially created order.
type OrderNumberSequence interface {
	Next(ctx context.Context) (kernel.OrderNumber, error)
}
