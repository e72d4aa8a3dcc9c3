// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kds/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// OrderUoW covers order transitions: the order and its audit trail.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// IngestUoW covers order creation, which also reads settings and stations.
	IngestUoW interface {
		TxManager
		OrderRepoFactory
		StationRepoFactory
		SettingsRepoFactory
		AuditRepoFactory
	}

	IngestUoWFactory interface {
		Create() IngestUoW
	}

	// AutoBumpUoW covers the scheduled serve of ready orders.
	AutoBumpUoW interface {
		TxManager
		OrderRepoFactory
		SettingsRepoFactory
		AuditRepoFactory
	}

	AutoBumpUoWFactory interface {
		Create() AutoBumpUoW
	}

	StationUoW interface {
		TxManager
		StationRepoFactory
	}

	StationUoWFactory interface {
		Create() StationUoW
	}

	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
