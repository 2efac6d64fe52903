package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order pages straight from the database.
// Soft-deleted rows are filtered in SQL; the total counts every live row
// matching the filter, not just the returned page.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. A page beyond the last one yields an empty
// slice with the real total, never an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "WHERE is_deleted = FALSE"
	args := make([]any, 0, 3)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	// The sort field comes from the whitelist, never from the client
	// string, so interpolating it is safe.
	direction := "ASC"
	if query.Sort().Descending {
		direction = "DESC"
	}
	orderBy := fmt.Sprintf("ORDER BY %s %s, number ASC", query.Sort().Field, direction)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			number,
			customer_name,
			phone,
			product,
			quantity,
			notes,
			status,
			cancelled_at,
			cancellation_reason,
			created_at,
			updated_at
		FROM orders
		%s
		%s
		LIMIT ? OFFSET ?
	`, where, orderBy), append(args, query.Page().Size(), query.Page().Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Page().Size())
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	totalPages := int((total + int64(query.Page().Size()) - 1) / int64(query.Page().Size()))

	return ListOrdersQueryResponse{
		Orders:     orders,
		Total:      total,
		Page:       query.Page().Number(),
		Limit:      query.Page().Size(),
		TotalPages: totalPages,
	}, nil
}
