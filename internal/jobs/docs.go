// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StalePendingOrdersJob - Runs every minute and logs pending orders that
// no courier has accepted within the staleness window.
// 2. EarningsReconciliationJob - Runs every five minutes and logs accounts
// whose earnings disagree with their delivered-order history.
//
// Both jobs are read-only watchdogs: they observe and log, they never mutate
// orders or accounts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleOrdersHandler, earningsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
