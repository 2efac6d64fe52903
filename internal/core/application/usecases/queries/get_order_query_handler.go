package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches a single order projection straight from the
// database, bypassing the aggregate. Soft-deleted rows are filtered in SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns *errs.ObjectNotFoundError when no
// live order matches the number.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE number = ? AND is_deleted = FALSE
	`, query.Number().String()).Row()

	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("number", query.Number().String())
		}
		return OrderResponse{}, err
	}

	return resp, nil
}

// scanOrderRow maps one projection row. Shared by the single and paged
// lookups, which select the same column list.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var resp OrderResponse
	var cancelledAt sql.NullTime
	var cancellationReason sql.NullString

	err := scan(
		&resp.Number,
		&resp.CustomerName,
		&resp.Phone,
		&resp.Product,
		&resp.Quantity,
		&resp.Notes,
		&resp.Status,
		&cancelledAt,
		&cancellationReason,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if cancelledAt.Valid {
		at := cancelledAt.Time
		resp.CancelledAt = &at
	}
	if cancellationReason.Valid && cancellationReason.String != "" {
		reason := cancellationReason.String
		resp.CancellationReason = &reason
	}

	return resp, nil
}
