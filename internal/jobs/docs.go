// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order pipeline.
//
// # Available Jobs
//
// 1. StaleOrderJob - Periodically scans the kitchen queue and warns about orders waiting longer than the configured threshold
// 2. StageBroadcastJob - Periodically pushes stage refresh events to connected staff panels
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(store, hub, staleThreshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and never crash the process; the next tick simply
// tries again. Failed job starts will stop any already running jobs.
package jobs
