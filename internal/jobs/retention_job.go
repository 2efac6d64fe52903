package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// retentionSchedule runs the purge at the top of every hour.
const retentionSchedule = "0 0 * * * *"

// RetentionJob permanently removes soft-deleted orders once they have been
// deleted for longer than the configured retention window. Each run purges
// at most one batch; the next run picks up the remainder.
type RetentionJob struct {
	handler   commands.PurgeDeletedOrdersCommandHandler
	retention time.Duration
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRetentionJob creates the hourly purge job.
func NewRetentionJob(
	handler commands.PurgeDeletedOrdersCommandHandler,
	retention time.Duration,
	batchSize int,
	logger *slog.Logger,
) *RetentionJob {
	return &RetentionJob{
		handler:   handler,
		retention: retention,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "retention_job"),
	}
}

// Start schedules the purge to run every hour.
func (j *RetentionJob) Start() error {
	_, err := j.cron.AddFunc(retentionSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeDeletedOrdersCommand(j.retention, j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention job failed", "error", err)
			return
		}
		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retention job started (running hourly)",
		"retention", j.retention.String(), "batch_size", j.batchSize)
	return nil
}

// Stop stops the retention job.
func (j *RetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention job stopped")
}
