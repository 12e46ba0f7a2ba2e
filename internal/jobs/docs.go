// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order management.
//
// # Available Jobs
//
// 1. StatusReportJob - Periodically logs the number of orders per lifecycle status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the coordinator
//	jobManager := jobs.NewJobManager(coordinator, "*/5 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report schedule is a standard five-field cron expression taken from
// configuration, so operators can tune the reporting cadence per environment.
package jobs
