package task

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/angas/chartjs-go/config"
	"github.com/angas/chartjs-go/feed"
	"github.com/angas/chartjs-go/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	dir := t.TempDir()
	db, err := store.New(context.Background(), filepath.Join(dir, "charts.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db, dir
}

func TestSnapshotTask(t *testing.T) {
	db, _ := newTestStore(t)
	live := feed.NewLiveCharts(10)
	require.NoError(t, live.Add(feed.Sample{Chart: "cpu", Series: "h1", Label: "t1", Value: 0.5}))
	require.NoError(t, live.Add(feed.Sample{Chart: "mem", Series: "h1", Label: "t1", Value: 12}))

	NewSnapshotTask(slog.Default(), db, live)()

	ctx := context.Background()
	charts, err := db.ListCharts(ctx)
	require.NoError(t, err)
	require.Len(t, charts, 2)
	assert.Equal(t, "line", charts[0].Type)

	snaps, err := db.GetSnapshots(ctx, "cpu", 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	want, _, err := live.Document("cpu")
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(snaps[0].Document))
}

func TestMaintenanceTask(t *testing.T) {
	db, dir := newTestStore(t)
	ctx := context.Background()

	_, err := db.SaveSnapshot(ctx, "cpu", time.Now().Add(-100*24*time.Hour), []byte(`{}`))
	require.NoError(t, err)
	_, err = db.SaveSnapshot(ctx, "cpu", time.Now(), []byte(`{}`))
	require.NoError(t, err)

	NewMaintenanceTask(slog.Default(), db, &config.AppConfig{})()

	snaps, err := db.GetSnapshots(ctx, "cpu", 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)

	backups, err := os.ReadDir(filepath.Join(dir, "backups"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestRunRejectsBadSchedule(t *testing.T) {
	db, _ := newTestStore(t)
	bad := "every now and then"
	cnfg := &config.AppConfig{Snapshot: config.AppConfigSnapshot{RunAt: &bad}}

	tasks := NewTasks(db, feed.NewLiveCharts(5), cnfg)
	assert.Error(t, tasks.Run())
	<-tasks.Stop().Done()
}
