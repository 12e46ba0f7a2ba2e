package jobs

import (
	"fmt"

	"orderflow/internal/core/application"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusReportJob *StatusReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	coordinator *application.OrderCoordinator, reportSchedule string, logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		statusReportJob: NewStatusReportJob(coordinator, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start status report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusReportJob.Stop()
}
