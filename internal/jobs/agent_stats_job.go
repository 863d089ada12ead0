package jobs

import (
	"context"
	"log/slog"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgentStatsJob periodically reconciles agent delivery counters with the
// aggregates recomputed from the delivery rows.
type AgentStatsJob struct {
	handler  commands.RecountAgentStatsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAgentStatsJob creates the reconciliation job. The schedule is a
// six-field cron expression with a seconds column.
func NewAgentStatsJob(
	handler commands.RecountAgentStatsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AgentStatsJob {
	return &AgentStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "agent_stats_job"),
	}
}

// Start schedules the reconciliation runs.
func (j *AgentStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRecountAgentStatsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Agent stats reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *AgentStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent stats job stopped")
}
