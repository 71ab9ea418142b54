package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// pendingQueueReportSchedule fires every 30 seconds.
const pendingQueueReportSchedule = "*/30 * * * * *"

// PendingQueueReporterJob periodically reports the state of the order queue:
// how many orders wait, how long the oldest has waited, and which order holds
// the preparation slot. Purely observational; the workflow is never touched.
type PendingQueueReporterJob struct {
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler
	allOrdersHandler     queries.GetAllOrdersQueryHandler
	cron                 *cron.Cron
	logger               *slog.Logger
}

// NewPendingQueueReporterJob creates a reporter over the order listings.
func NewPendingQueueReporterJob(
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *PendingQueueReporterJob {
	return &PendingQueueReporterJob{
		pendingOrdersHandler: pendingOrdersHandler,
		allOrdersHandler:     allOrdersHandler,
		cron:                 cron.New(cron.WithSeconds()),
		logger:               logger.With("component", "pending_queue_reporter_job"),
	}
}

// Start begins the periodic queue reports.
func (j *PendingQueueReporterJob) Start() error {
	_, err := j.cron.AddFunc(pendingQueueReportSchedule, j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending queue reporter started (running every 30 seconds)")
	return nil
}

// Stop stops the periodic queue reports.
func (j *PendingQueueReporterJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending queue reporter stopped")
}

func (j *PendingQueueReporterJob) report() {
	ctx := context.Background()

	pending, err := j.pendingOrdersHandler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending queue report failed", "error", err)
		return
	}

	oldestWait := time.Duration(0)
	if len(pending) > 0 {
		oldestWait = time.Since(pending[0].CreatedAt)
	}

	j.logger.InfoContext(ctx, "Pending queue state",
		"pending_orders", len(pending),
		"oldest_wait", oldestWait.Round(time.Second).String(),
		"preparing", j.activeOrderCode(ctx),
	)
}

// activeOrderCode returns the code of the order holding the preparation slot,
// or "none" when the slot is free or the listing fails.
func (j *PendingQueueReporterJob) activeOrderCode(ctx context.Context) string {
	all, err := j.allOrdersHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order board report failed", "error", err)
		return "none"
	}

	for _, snapshot := range all {
		if snapshot.Status == order.InPreparation.String() {
			return snapshot.Code
		}
	}
	return "none"
}
