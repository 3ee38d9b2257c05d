package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/angas/chartjs-go/feed"
	"github.com/angas/chartjs-go/store"
)

// NewSnapshotTask stores the current document of every live chart, both as
// the chart's latest version and as a dated snapshot.
func NewSnapshotTask(logger *slog.Logger, db *store.Store, live *feed.LiveCharts) func() {
	return func() {
		logger.Debug("running snapshot task...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		now := time.Now()
		docs := live.Documents()
		for name, doc := range docs {
			if _, err := db.SaveChart(ctx, name, string(chartjs.TypeLine), doc); err != nil {
				logger.Error("saving live chart failed", slog.String("chart", name), slog.Any("error", err))
				continue
			}
			if _, err := db.SaveSnapshot(ctx, name, now, doc); err != nil {
				logger.Error("saving snapshot failed", slog.String("chart", name), slog.Any("error", err))
			}
		}

		logger.Info("snapshot task done", slog.Int("charts", len(docs)))
	}
}
