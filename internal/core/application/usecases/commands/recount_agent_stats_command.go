package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrRecountAgentStatsCommandIsNotConstructed = errors.New(
	"RecountAgentStatsCommand must be created via NewRecountAgentStatsCommand constructor",
)

// RecountAgentStatsCommand triggers reconciliation of every agent's derived
// counters against the delivery history. Corrects drift the incremental
// bookkeeping may have accumulated.
//
// Example:
//
//	cmd := NewRecountAgentStatsCommand()
//	handler := NewRecountAgentStatsCommandHandler(uowFactory, logger)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stats reconciliation failed: %v", err)
//	}
type RecountAgentStatsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecountAgentStatsCommand creates a command to reconcile agent counters.
// This is a parameterless command that processes all agent profiles.
func NewRecountAgentStatsCommand() RecountAgentStatsCommand {
	return RecountAgentStatsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecountAgentStatsCommand) Validate() error {
	return c.guard.Validate(ErrRecountAgentStatsCommandIsNotConstructed)
}
