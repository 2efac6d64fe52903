// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The surrogate uuid key stays internal to the storage layer; the unique
// order number is the identity everything else uses. Soft deletion keeps the
// row and flips is_deleted, so the unique index on number also prevents
// number reuse after deletion until the retention job purges the row.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number             string     `gorm:"size:64;uniqueIndex;not null"`
	CustomerName       string     `gorm:"size:100;not null"`
	Phone              string     `gorm:"size:32;not null"`
	Product            string     `gorm:"size:200;not null"`
	Quantity           int        `gorm:"not null"`
	Notes              string     `gorm:"size:1000"`
	Status             string     `gorm:"size:16;index;not null"`
	CancelledAt        *time.Time
	CancellationReason *string   `gorm:"size:500"`
	IsDeleted          bool      `gorm:"index;not null;default:false"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
	Version            int       `gorm:"not null;default:1"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// The surrogate ID is left zero; Add assigns a fresh one and Update matches
// rows by number.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cancelledAt *time.Time
	var cancellationReason *string
	if at := aggregate.CancelledAt(); at != nil {
		value := *at
		cancelledAt = &value
		reason := aggregate.CancellationReason()
		cancellationReason = &reason
	}

	return OrderDTO{
		Number:             aggregate.Number().String(),
		CustomerName:       aggregate.CustomerName(),
		Phone:              aggregate.Phone(),
		Product:            aggregate.Product(),
		Quantity:           aggregate.Quantity(),
		Notes:              aggregate.Notes(),
		Status:             aggregate.Status().String(),
		CancelledAt:        cancelledAt,
		CancellationReason: cancellationReason,
		IsDeleted:          aggregate.IsDeleted(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-checks the structural invariants of stored data.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	reason := ""
	if dto.CancellationReason != nil {
		reason = *dto.CancellationReason
	}

	return order.RestoreOrder(
		number,
		dto.CustomerName,
		dto.Phone,
		dto.Product,
		dto.Quantity,
		dto.Notes,
		status,
		dto.CancelledAt,
		reason,
		dto.IsDeleted,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
