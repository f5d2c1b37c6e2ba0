package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"pizzeria/internal/adapters/in/ws"
	"pizzeria/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderJob     *StaleOrderJob
	stageBroadcastJob *StageBroadcastJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	store ports.StageStore,
	hub *ws.Hub,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob:     NewStaleOrderJob(store, staleThreshold, logger),
		stageBroadcastJob: NewStageBroadcastJob(hub, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	if err := jm.stageBroadcastJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderJob.Stop()
		return fmt.Errorf("failed to start stage broadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stageBroadcastJob.Stop()
	jm.staleOrderJob.Stop()
}
