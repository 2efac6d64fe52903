package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// SortField names a column orders can be sorted by. Only values from this
// whitelist reach SQL; anything else is rejected at the query boundary.
type SortField string

const (
	SortByCreatedAt    SortField = "created_at"
	SortByUpdatedAt    SortField = "updated_at"
	SortByNumber       SortField = "number"
	SortByCustomerName SortField = "customer_name"
	SortByQuantity     SortField = "quantity"
	SortByStatus       SortField = "status"
)

// Sort describes the ordering of a listing.
type Sort struct {
	Field      SortField
	Descending bool
}

// DefaultSort orders listings newest-first.
func DefaultSort() Sort {
	return Sort{Field: SortByCreatedAt, Descending: true}
}

// ListFilter narrows a listing. A nil Status means all statuses.
// Soft-deleted orders are always excluded; there is deliberately no knob to
// include them.
type ListFilter struct {
	Status *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Every read, page and update operation excludes soft-deleted orders.
// Atomicity of a single order's read-modify-write is guaranteed only when
// the caller re-reads immediately before mutating within one unit of work;
// the version token turns a lost race into a ConcurrentModificationError.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Returns *errs.DuplicateNumberError when the order number collides
	// with an existing row; the caller may regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns *errs.ConcurrentModificationError when the stored version no
	// longer matches the aggregate's, and *errs.ObjectNotFoundError when
	// the order does not exist or is soft-deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its number.
	// Returns *errs.ObjectNotFoundError for missing or soft-deleted orders.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetPage retrieves one page of orders matching the filter, together
	// with the total count of matching rows across all pages.
	GetPage(ctx context.Context, filter ListFilter, sort Sort, page kernel.Page) ([]*order.Order, int64, error)

	// SoftDelete marks an order deleted without removing the row.
	// Returns *errs.ObjectNotFoundError when no live order matches.
	SoftDelete(ctx context.Context, number kernel.OrderNumber) error

	// HardDelete removes the row entirely. Unlike the other operations it
	// also reaches soft-deleted orders; the retention job purges through
	// it. Returns *errs.ObjectNotFoundError when nothing was removed.
	HardDelete(ctx context.Context, number kernel.OrderNumber) error

	// FindDeletedBefore returns the numbers of up to limit soft-deleted
	// orders whose last modification is older than cutoff.
	FindDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]kernel.OrderNumber, error)
}
