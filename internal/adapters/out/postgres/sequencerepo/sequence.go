// Package sequencerepo persists the monotonically increasing counter that
// order numbers are generated from.
package sequencerepo

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// orderCounterName keys the single counter row used for order numbers.
// The table is keyed by name so further sequences can share it.
const orderCounterName = "orders"

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey;size:32"`
	Value int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_counters".
func (CounterDTO) TableName() string {
	return "order_counters"
}

// GormOrderNumberSequence implements ports.OrderNumberSequence on top of a
// counter row. The increment runs as a single upsert returning the new
// value, so concurrent calls serialize on the row lock and can never
// observe the same value. Run inside the creation transaction, a consumed
// value rolls back with a failed insert.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence creates a sequence bound to db, which is
// expected to be a transaction handle.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next atomically increments the counter and returns the resulting order
// number.
func (s *GormOrderNumberSequence) Next(ctx context.Context) (kernel.OrderNumber, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = order_counters.value + 1
		RETURNING value
	`, orderCounterName).Scan(&value).Error
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	return kernel.OrderNumberFromSequence(value)
}
