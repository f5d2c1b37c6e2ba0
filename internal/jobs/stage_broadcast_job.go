package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/adapters/in/ws"
	"pizzeria/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StageBroadcastJob periodically pushes a refresh event for both queue
// stages to all connected staff panels. Transitions already broadcast on
// their own; this tick covers panels that reconnected and missed one.
type StageBroadcastJob struct {
	hub    *ws.Hub
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStageBroadcastJob creates a job that refreshes staff panels every 15 seconds.
func NewStageBroadcastJob(hub *ws.Hub, logger *slog.Logger) *StageBroadcastJob {
	return &StageBroadcastJob{
		hub:    hub,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stage_broadcast_job"),
	}
}

// Start begins the periodic refresh broadcast.
func (j *StageBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		if j.hub.ClientCount() == 0 {
			return
		}

		j.hub.BroadcastStageUpdate(order.StageKitchen.String())
		j.hub.BroadcastStageUpdate(order.StageReady.String())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stage broadcast job started (running every 15 seconds)")
	return nil
}

// Stop stops the periodic refresh broadcast.
func (j *StageBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stage broadcast job stopped")
}
