// Package jobs provides scheduled background tasks for the courier backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. AgentStatsJob - Periodically reconciles every agent's delivery counters
// and rating aggregates against the delivery rows, correcting drift caused
// by crashes between a delivery completion and its counter update.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(recountStatsHandler, schedule, logger)
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
// The reconciliation schedule comes from configuration as a six-field cron
// expression with a seconds column, e.g. "0 */5 * * * *" for every five
// minutes. Reconciliation is cheap (one aggregate query per agent) but not
// free, so sub-minute schedules are only useful in tests.
package jobs
