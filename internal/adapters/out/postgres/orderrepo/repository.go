package orderrepo

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// All read and write paths except HardDelete filter out soft-deleted rows.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(number kernel.OrderNumber, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// isUniqueViolation reports whether err is the driver's unique-constraint
// error. The lib/pq driver reports class 23505; GORM's translated sentinel
// is checked as well for connections opened with error translation on.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Add saves a new order. A collision on the order number surfaces as
// *errs.DuplicateNumberError; nothing is persisted in that case, so the
// caller may retry with a fresh number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = uuid.New()
	dto.Version = 1

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewDuplicateNumberError(dto.Number, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// Update saves an existing order, guarded by the version the aggregate was
// loaded with. A row that vanished (or was soft-deleted) since the read
// surfaces as *errs.ObjectNotFoundError; a version mismatch surfaces as
// *errs.ConcurrentModificationError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ? AND is_deleted = FALSE AND version = ?", dto.Number, aggregate.Version()).
		Updates(map[string]any{
			"customer_name":       dto.CustomerName,
			"phone":               dto.Phone,
			"product":             dto.Product,
			"quantity":            dto.Quantity,
			"notes":               dto.Notes,
			"status":              dto.Status,
			"cancelled_at":        dto.CancelledAt,
			"cancellation_reason": dto.CancellationReason,
			"version":             aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var live int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("number = ? AND is_deleted = FALSE", dto.Number).
			Count(&live).Error; err != nil {
			return err
		}
		if live == 0 {
			return errs.NewObjectNotFoundError("number", dto.Number)
		}
		return errs.NewConcurrentModificationError(dto.Number, aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.Number(), aggregate)
	return nil
}

// Get retrieves a live order by its number.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "number = ? AND is_deleted = FALSE", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("number", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPage retrieves one page of live orders matching the filter, plus the
// total count across all pages. A page past the end yields an empty slice
// with the real total.
func (r *GormOrderRepository) GetPage(
	ctx context.Context,
	filter ports.ListFilter,
	sort ports.Sort,
	page kernel.Page,
) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("is_deleted = FALSE")
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	var dtos []OrderDTO
	err := query.
		Order(string(sort.Field) + " " + direction).
		Order("number ASC").
		Limit(page.Size()).
		Offset(page.Offset()).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, 0, mapErr
		}
		orders = append(orders, aggregate)
	}

	return orders, total, nil
}

// SoftDelete marks a live order deleted. The row survives for the retention
// window; only the purge path removes it.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ? AND is_deleted = FALSE", number.String()).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("number", number.String())
	}

	return nil
}

// HardDelete removes the row entirely, soft-deleted or not. Only the
// retention job calls this.
func (r *GormOrderRepository) HardDelete(ctx context.Context, number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("number = ?", number.String()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("number", number.String())
	}

	return nil
}

// FindDeletedBefore returns the numbers of up to limit soft-deleted orders
// whose last modification is older than cutoff, oldest first.
func (r *GormOrderRepository) FindDeletedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]kernel.OrderNumber, error) {
	var raw []string
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("is_deleted = TRUE AND updated_at < ?", cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Pluck("number", &raw).Error
	if err != nil {
		return nil, err
	}

	numbers := make([]kernel.OrderNumber, 0, len(raw))
	for _, value := range raw {
		number, mapErr := kernel.NewOrderNumber(value)
		if mapErr != nil {
			return nil, mapErr
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}
