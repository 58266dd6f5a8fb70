package cmd

import (
	"log/slog"
	"os"
	"time"

	"yms/internal/adapters/out/postgres"
	"yms/internal/core/application/usecases/commands"
	"yms/internal/core/application/usecases/queries"
	"yms/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderMovementsCommandHandler() commands.AdvanceOrderMovementsCommandHandler {
	var f commands.MovementUoWFactory = FuncMovementUoWFactory(func() commands.MovementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderMovementsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetYardInventoryQueryHandler() queries.GetYardInventoryQueryHandler {
	return queries.NewGetYardInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMovementHistoryQueryHandler() queries.GetMovementHistoryQueryHandler {
	return queries.NewGetMovementHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	interval := time.Duration(c.config.MonitorIntervalSeconds) * time.Second
	monitorJob := jobs.NewOrderMonitorJob(
		c.CreateAdvanceOrderMovementsCommandHandler(),
		c.gormDB,
		interval,
		c.logger,
	)
	return jobs.NewJobManager(monitorJob)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncMovementUoWFactory func() commands.MovementUoW

func (f FuncMovementUoWFactory) Create() commands.MovementUoW {
	return f()
}
