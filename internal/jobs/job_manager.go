package jobs

import (
	"fmt"
	"log/slog"

	"campuseats/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingOrdersJob     *StalePendingOrdersJob
	earningsReconciliationJob *EarningsReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	earningsHandler queries.GetEarningsMismatchesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingOrdersJob:     NewStalePendingOrdersJob(staleOrdersHandler, logger),
		earningsReconciliationJob: NewEarningsReconciliationJob(earningsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending orders job: %w", err)
	}

	if err := jm.earningsReconciliationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stalePendingOrdersJob.Stop()
		return fmt.Errorf("failed to start earnings reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.earningsReconciliationJob.Stop()
	jm.stalePendingOrdersJob.Stop()
}
