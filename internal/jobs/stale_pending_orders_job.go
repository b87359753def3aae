package jobs

import (
	"context"
	"log/slog"
	"time"

	"campuseats/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleOrderAge is how long an order may sit in Pending before the job
// reports it as going cold.
const staleOrderAge = 15 * time.Minute

// StalePendingOrdersJob periodically reports pending orders that no courier
// has picked up. The report is log-only: campus staff watch the logs, the
// orders themselves stay available in the feed.
type StalePendingOrdersJob struct {
	handler queries.GetStalePendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePendingOrdersJob creates a job that checks for stale pending orders
// every minute.
func NewStalePendingOrdersJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	logger *slog.Logger,
) *StalePendingOrdersJob {
	return &StalePendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_pending_orders_job"),
	}
}

// Start begins the stale order check, running every minute.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalePendingOrdersQuery(time.Now().UTC().Add(-staleOrderAge))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job failed to build query", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job failed", "error", handleErr)
			return
		}

		for _, o := range stale {
			j.logger.WarnContext(ctx, "Order is still pending",
				"order_id", o.ID,
				"vendor", o.Vendor,
				"created_at", o.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started (running every minute)")
	return nil
}

// Stop stops the stale order check.
func (j *StalePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}
