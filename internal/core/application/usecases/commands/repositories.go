// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest UoW covering the repositories it
// touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// AgentUoW manages transactions for agent-profile-only operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// AccountAgentUoW manages transactions spanning an account and its agent
	// profile. Used when an agent is created together with its account.
	AccountAgentUoW interface {
		TxManager
		AccountRepoFactory
		AgentRepoFactory
	}

	// AccountAgentUoWFactory creates new account+agent unit of work instances.
	AccountAgentUoWFactory interface {
		Create() AccountAgentUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages transactions spanning an order and its delivery.
	// Used when an operator assigns an order to an agent.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		AgentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// DeliveryUoW manages transactions spanning a delivery, its order, and
	// its agent. Used when progressing the hand-off lifecycle, where
	// completion also touches the order and the agent aggregates.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		AgentRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// AgentStatsUoW manages transactions for aggregate reconciliation,
	// reading delivery rows and correcting agent counters.
	AgentStatsUoW interface {
		TxManager
		AgentRepoFactory
		DeliveryRepoFactory
	}

	// AgentStatsUoWFactory creates new reconciliation unit of work instances.
	AgentStatsUoWFactory interface {
		Create() AgentStatsUoW
	}
)
