// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. RetentionJob - Runs hourly to permanently remove orders whose
// soft-deletion is older than the configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retention, batchSize, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The retention job uses the cron expression "0 0 * * * *", the top of
// every hour. Each run removes at most one batch of expired orders so a
// large backlog never monopolizes the database.
//
// # Error Handling
//
// - A failed purge run is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
