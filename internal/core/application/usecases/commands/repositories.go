// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"yms/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// YardRepoFactory provides access to the yard repository within a transaction.
	YardRepoFactory interface {
		YardRepository() ports.YardRepository
	}

	// EquipmentRepoFactory provides access to the equipment repository within a transaction.
	EquipmentRepoFactory interface {
		EquipmentRepository() ports.EquipmentRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CreateOrderUoW manages transactions for order intake: the new order
	// plus the driver lookup that validates it.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// CreateOrderUoWFactory creates new order intake unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// MovementUoW manages transactions for the movement engine. A movement
	// leg touches the order, its equipment, yard inventory, and the ledger
	// atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... perform the movement leg
	//
	//   err = uow.Commit(ctx)
	MovementUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		LedgerRepoFactory
		YardRepoFactory
		EquipmentRepoFactory
	}

	// MovementUoWFactory creates new movement unit of work instances.
	// Each order is processed in its own unit of work.
	MovementUoWFactory interface {
		Create() MovementUoW
	}
)
