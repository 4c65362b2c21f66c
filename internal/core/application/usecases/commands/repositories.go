// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"moveout/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// JobRepoFactory provides access to the job repository within a
	// transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// MoverRepoFactory provides access to the mover repository within a
	// transaction.
	MoverRepoFactory interface {
		MoverRepository() ports.MoverRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// MoverUoW manages transactions for mover-only operations.
	MoverUoW interface {
		TxManager
		MoverRepoFactory
	}

	// MoverUoWFactory creates new mover unit of work instances.
	MoverUoWFactory interface {
		Create() MoverUoW
	}

	// OrderJobUoW manages transactions spanning an order and its jobs,
	// the combination every projection-updating command needs.
	OrderJobUoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
	}

	// OrderJobUoWFactory creates new order+job unit of work instances.
	OrderJobUoWFactory interface {
		Create() OrderJobUoW
	}

	// UoW manages transactions across all three aggregates. Used by
	// handlers that also credit the mover's balance.
	UoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
		MoverRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
