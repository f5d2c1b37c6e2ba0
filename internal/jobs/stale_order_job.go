package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob watches the kitchen queue for orders that have been waiting
// longer than the configured threshold. It only reports; nothing is moved or
// cancelled automatically, the kitchen staff decides what to do.
type StaleOrderJob struct {
	store     ports.StageStore
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates a job that scans the kitchen stage every 30 seconds.
func NewStaleOrderJob(store ports.StageStore, threshold time.Duration, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		store:     store,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order scan.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		pending, err := j.store.List(ctx, order.StageKitchen)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order scan failed", "error", err)
			return
		}

		now := time.Now()
		for _, o := range pending {
			waiting := now.Sub(o.CreatedAt())
			if waiting > j.threshold {
				j.logger.WarnContext(ctx, "Order waiting in kitchen past threshold",
					"orderID", o.ID().String(),
					"waiting", waiting.Round(time.Second).String(),
					"threshold", j.threshold.String(),
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every 30 seconds)")
	return nil
}

// Stop stops the stale order scan.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
