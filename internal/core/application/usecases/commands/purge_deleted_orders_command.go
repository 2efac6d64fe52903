package commands

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrPurgeDeletedOrdersCommandIsNotConstructed = errors.New(
		"PurgeDeletedOrdersCommand must be created via NewPurgeDeletedOrdersCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// PurgeDeletedOrdersCommand represents one run of the retention sweep:
// hard-delete up to batchSize soft-deleted orders older than the retention
// window.
type PurgeDeletedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

// NewPurgeDeletedOrdersCommand creates a command to purge soft-deleted
// orders whose last modification is older than retention.
func NewPurgeDeletedOrdersCommand(retention time.Duration, batchSize int) (PurgeDeletedOrdersCommand, error) {
	if retention <= 0 {
		return PurgeDeletedOrdersCommand{}, ErrRetentionIsInvalid
	}
	if batchSize <= 0 {
		return PurgeDeletedOrdersCommand{}, ErrBatchSizeIsInvalid
	}

	return PurgeDeletedOrdersCommand{
		retention: retention,
		batchSize: batchSize,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeDeletedOrdersCommandIsNotConstructed if validation fails.
func (c PurgeDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedOrdersCommandIsNotConstructed)
}

// Retention returns how long soft-deleted orders are kept before purging.
func (c PurgeDeletedOrdersCommand) Retention() time.Duration {
	return c.retention
}

// BatchSize returns the maximum number of orders removed per run.
func (c PurgeDeletedOrdersCommand) BatchSize() int {
	return c.batchSize
}
