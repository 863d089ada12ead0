package commands

import (
	"context"
	"log/slog"
)

// RecountAgentStatsCommandHandler reconciles every agent's derived counters
// with aggregates recomputed from the delivery rows. Agents whose counters
// already match are skipped to keep the write set small.
type RecountAgentStatsCommandHandler struct {
	uowFactory AgentStatsUoWFactory
	logger     *slog.Logger
}

// NewRecountAgentStatsCommandHandler creates a handler for counter
// reconciliation.
func NewRecountAgentStatsCommandHandler(
	uowFactory AgentStatsUoWFactory,
	logger *slog.Logger,
) RecountAgentStatsCommandHandler {
	return RecountAgentStatsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the reconciliation command.
// All corrections are applied within a single transaction.
func (h *RecountAgentStatsCommandHandler) Handle(ctx context.Context, cmd RecountAgentStatsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	deliveryRepo := uow.DeliveryRepository()

	agents, err := agentRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, profile := range agents {
		stats, statsErr := deliveryRepo.StatsByAgent(ctx, profile.ID())
		if statsErr != nil {
			return statsErr
		}

		if stats.TotalDelivered == profile.TotalDeliveries() &&
			stats.RatingSum == profile.RatingSum() &&
			stats.RatingCount == profile.RatingCount() {
			continue
		}

		h.logger.InfoContext(ctx, "correcting agent counters",
			slog.String("agent_id", profile.ID().String()),
			slog.Int("stored_total", profile.TotalDeliveries()),
			slog.Int("actual_total", stats.TotalDelivered))

		if err := profile.ApplyRecount(stats.TotalDelivered, stats.RatingSum, stats.RatingCount); err != nil {
			return err
		}
		if err := agentRepo.Update(ctx, profile); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
