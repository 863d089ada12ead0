package jobs

import (
	"fmt"
	"log/slog"

	"courier/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	agentStatsJob *AgentStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	recountStatsHandler commands.RecountAgentStatsCommandHandler,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		agentStatsJob: NewAgentStatsJob(recountStatsHandler, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.agentStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start agent stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.agentStatsJob.Stop()
}
