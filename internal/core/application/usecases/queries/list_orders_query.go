package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// sortFields whitelists the client-facing sort keys and maps them to
// columns. Anything outside this map is rejected before reaching SQL.
var sortFields = map[string]ports.SortField{
	"createdAt":    ports.SortByCreatedAt,
	"updatedAt":    ports.SortByUpdatedAt,
	"number":       ports.SortByNumber,
	"customerName": ports.SortByCustomerName,
	"quantity":     ports.SortByQuantity,
	"status":       ports.SortByStatus,
}

// ListOrdersQuery retrieves one page of orders, optionally narrowed to a
// single status. Page and limit are clamped rather than rejected; an
// unknown status or sort key is an error.
//
// Example:
//
//	status := "pending"
//	query, err := NewListOrdersQuery(&status, "", "", 1, 20)
//	if err != nil {
//	    return fmt.Errorf("bad listing parameters: %w", err)
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct {
	status *order.Status
	sort   ports.Sort
	page   kernel.Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query.
//
// rawStatus, when non-nil, must name a known status. rawSortBy is one of
// the whitelisted keys, empty for the default (newest first). rawSortOrder
// is "asc" or "desc", empty for "desc". page and limit outside their
// bounds are clamped, mirroring the page value object.
func NewListOrdersQuery(rawStatus *string, rawSortBy, rawSortOrder string, page, limit int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		sort: ports.DefaultSort(),
		page: kernel.NewPage(page, limit),

		guard: guard.NewConstructorGuard(),
	}

	if rawStatus != nil {
		status, err := order.StatusFromString(*rawStatus)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &status
	}

	if rawSortBy != "" {
		field, ok := sortFields[rawSortBy]
		if !ok {
			return ListOrdersQuery{}, errs.NewValueIsInvalidError("sortBy")
		}
		q.sort.Field = field
	}

	switch rawSortOrder {
	case "", "desc":
		q.sort.Descending = true
	case "asc":
		q.sort.Descending = false
	default:
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("sortOrder")
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil for all statuses.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Sort returns the resolved ordering.
func (q ListOrdersQuery) Sort() ports.Sort {
	return q.sort
}

// Page returns the clamped pagination window.
func (q ListOrdersQuery) Page() kernel.Page {
	return q.page
}

// ListOrdersQueryResponse is one page of order projections together with
// the pagination envelope the API exposes.
type ListOrdersQueryResponse struct {
	Orders     []OrderResponse
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
