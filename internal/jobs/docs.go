// Package jobs provides scheduled background tasks for the bidding system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. QuoteCleanupJob - Runs every minute to remove quotes whose order was
// deleted administratively
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(removeOrphanQuotesHandler, logger)
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
// The cleanup job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. Orphaned quotes are invisible to every read
// model, so a minute of lag is acceptable.
//
// # Error Handling
//
// - Cleanup job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
