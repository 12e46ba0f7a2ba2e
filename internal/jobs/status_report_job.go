package jobs

import (
	"context"

	"orderflow/internal/core/application"
	"orderflow/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// StatusReportJob periodically logs the number of orders per lifecycle
// status. The schedule is a standard five-field cron expression.
type StatusReportJob struct {
	coordinator *application.OrderCoordinator
	schedule    string
	cron        *cron.Cron
	logger      zerolog.Logger
}

// NewStatusReportJob creates a job reporting order counts on the given
// cron schedule.
func NewStatusReportJob(
	coordinator *application.OrderCoordinator, schedule string, logger zerolog.Logger,
) *StatusReportJob {
	return &StatusReportJob{
		coordinator: coordinator,
		schedule:    schedule,
		cron:        cron.New(),
		logger:      logger.With().Str("component", "status_report_job").Logger(),
	}
}

// Start schedules the report. Fails when the cron expression is invalid.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("status report job started")
	return nil
}

// Stop stops the report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("status report job stopped")
}

func (j *StatusReportJob) report() {
	counts := j.coordinator.CountByStatus(context.Background())

	total := 0
	event := j.logger.Info()
	for _, status := range []order.Status{
		order.New, order.Processing, order.Shipped, order.Delivered, order.Cancelled,
	} {
		event = event.Int(status.String(), counts[status])
		total += counts[status]
	}
	event.Int("total", total).Msg("order status report")
}
