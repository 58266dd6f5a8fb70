package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"yms/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderMonitorJob periodically advances active orders through their
// departure and arrival legs.
type OrderMonitorJob struct {
	handler  commands.AdvanceOrderMovementsCommandHandler
	db       *gorm.DB
	interval time.Duration
	cron      *cron.Cron
	running   bool
	scheduled bool
	logger    *slog.Logger
}

// NewOrderMonitorJob creates a monitor that ticks on the given interval.
// Uses AdvanceOrderMovementsCommandHandler to process due movements.
func NewOrderMonitorJob(
	handler commands.AdvanceOrderMovementsCommandHandler,
	db *gorm.DB,
	interval time.Duration,
	logger *slog.Logger,
) *OrderMonitorJob {
	return &OrderMonitorJob{
		handler:  handler,
		db:       db,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_monitor_job"),
	}
}

// Start begins the monitor. Calling Start on a running monitor is a no-op.
func (j *OrderMonitorJob) Start() error {
	if j.running {
		return nil
	}

	if !j.scheduled {
		_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", int(j.interval.Seconds())), j.tick)
		if err != nil {
			return err
		}
		j.scheduled = true
	}

	j.cron.Start()
	j.running = true
	j.logger.InfoContext(context.Background(), "Order monitor started",
		"interval", j.interval.String())
	return nil
}

// Stop stops the monitor and waits for an in-flight tick to complete.
func (j *OrderMonitorJob) Stop() {
	if !j.running {
		return
	}

	<-j.cron.Stop().Done()
	j.running = false
	j.logger.InfoContext(context.Background(), "Order monitor stopped")
}

func (j *OrderMonitorJob) tick() {
	ctx := context.Background()

	if !j.databaseIsUsable(ctx) {
		return
	}

	cmd, err := commands.NewAdvanceOrderMovementsCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order monitor tick skipped", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Order monitor tick failed", "error", err)
	}
}

// databaseIsUsable pings the connection before a tick so a dropped
// connection skips the pass instead of failing every order in it.
func (j *OrderMonitorJob) databaseIsUsable(ctx context.Context) bool {
	sqlDB, err := j.db.DB()
	if err != nil {
		j.logger.WarnContext(ctx, "Database handle unavailable, skipping tick", "error", err)
		return false
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		j.logger.WarnContext(ctx, "Database unreachable, skipping tick", "error", err)
		return false
	}
	return true
}
