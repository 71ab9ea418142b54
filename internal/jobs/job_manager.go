package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingQueueReporterJob *PendingQueueReporterJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingQueueReporterJob: NewPendingQueueReporterJob(pendingOrdersHandler, allOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingQueueReporterJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending queue reporter job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingQueueReporterJob.Stop()
}
