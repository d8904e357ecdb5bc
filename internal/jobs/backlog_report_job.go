package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverus/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// How long an order may sit unconfirmed before the report flags it.
const backlogAge = 15 * time.Minute

// BacklogReportJob periodically surfaces restaurants that are sitting on
// unconfirmed orders. Runs every five minutes and logs one line per
// restaurant with a stale backlog.
type BacklogReportJob struct {
	handler queries.GetPendingBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates the backlog report job.
func NewBacklogReportJob(handler queries.GetPendingBacklogQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start schedules the report to run every five minutes.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetPendingBacklogQuery(backlogAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job misconfigured", "error", err)
			return
		}

		entries, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
			return
		}

		for _, entry := range entries {
			j.logger.WarnContext(ctx, "Restaurant has stale pending orders",
				"restaurantId", entry.RestaurantID.String(),
				"restaurantName", entry.RestaurantName,
				"numPending", entry.NumPending,
				"oldestCreatedAt", entry.OldestAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every five minutes)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
