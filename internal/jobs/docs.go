// Package jobs provides scheduled background tasks for the yard management
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderMonitorJob - Runs on a configurable interval to advance active
// orders through their departure and arrival legs.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderMonitorJob)
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
// The monitor uses an "@every Ns" schedule where N comes from configuration.
// Ticks that find the database unreachable are skipped; the connection pool
// re-establishes on the next use.
//
// # Error Handling
//
// Movement failures are classified and persisted by the command handler
// itself; the job only logs tick-level errors and keeps running.
package jobs
