package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/angas/chartjs-go/config"
	"github.com/angas/chartjs-go/feed"
	"github.com/angas/chartjs-go/store"
	"github.com/robfig/cron/v3"
)

type Tasks struct {
	cron            *cron.Cron
	cnfg            *config.AppConfig
	SnapshotTask    func()
	MaintenanceTask func()
}

func NewTasks(db *store.Store, live *feed.LiveCharts, cnfg *config.AppConfig) *Tasks {
	logger := slog.Default().With("module", "tasks")
	return &Tasks{
		cron:            cron.New(),
		cnfg:            cnfg,
		SnapshotTask:    NewSnapshotTask(logger.With(slog.String("task", "snapshot")), db, live),
		MaintenanceTask: NewMaintenanceTask(logger.With(slog.String("task", "maintenance")), db, cnfg),
	}
}

// Run schedules the tasks and starts the cron runner.
func (t *Tasks) Run() error {
	if _, err := t.cron.AddFunc(t.cnfg.Snapshot.GetRunAt(), t.SnapshotTask); err != nil {
		return fmt.Errorf("scheduling snapshot task: %w", err)
	}
	if _, err := t.cron.AddFunc(t.cnfg.Snapshot.GetMaintenanceAt(), t.MaintenanceTask); err != nil {
		return fmt.Errorf("scheduling maintenance task: %w", err)
	}
	t.cron.Start()
	return nil
}

// Stop stops scheduling; the returned context is done when running jobs
// have finished.
func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
