package jobs

import (
	"context"
	"log/slog"

	"campuseats/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// EarningsReconciliationJob periodically cross-checks account earnings
// against delivered orders. A mismatch means the deliver-and-credit
// transaction invariant was broken somewhere and needs investigation.
type EarningsReconciliationJob struct {
	handler queries.GetEarningsMismatchesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEarningsReconciliationJob creates a job that reconciles earnings every
// five minutes.
func NewEarningsReconciliationJob(
	handler queries.GetEarningsMismatchesQueryHandler,
	logger *slog.Logger,
) *EarningsReconciliationJob {
	return &EarningsReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "earnings_reconciliation_job"),
	}
}

// Start begins the reconciliation check, running every five minutes.
func (j *EarningsReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		mismatches, handleErr := j.handler.Handle(ctx, queries.NewGetEarningsMismatchesQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Earnings reconciliation job failed", "error", handleErr)
			return
		}

		for _, m := range mismatches {
			j.logger.ErrorContext(ctx, "Account earnings out of sync with deliveries",
				"uid", m.UID,
				"earnings", m.Earnings,
				"expected", m.Expected,
				"delivered", m.Delivered,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Earnings reconciliation job started (running every five minutes)")
	return nil
}

// Stop stops the reconciliation check.
func (j *EarningsReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Earnings reconciliation job stopped")
}
