// Package jobs provides scheduled background tasks for the pizzeria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order workflow.
//
// # Available Jobs
//
// 1. PendingQueueReporterJob - Periodically logs the depth of the pending
// queue, the age of its oldest order, and which order currently holds the
// preparation slot. The job observes only; it never mutates orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingOrdersHandler, allOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reporter failures are logged and the next tick retries; a failed report
// never affects the workflow itself.
package jobs
