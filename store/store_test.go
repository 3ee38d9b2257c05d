package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(context.Background(), filepath.Join(dir, "charts.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, dir
}

func TestChartLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.SaveChart(ctx, "cpu", "line", []byte(`{"type":"line","data":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "cpu", first.Name)
	assert.Equal(t, "line", first.Type)
	assert.JSONEq(t, `{"type":"line","data":{}}`, string(first.Document))

	second, err := s.SaveChart(ctx, "cpu", "bar", []byte(`{"type":"bar","data":{}}`))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "id survives an update")
	assert.Equal(t, "bar", second.Type)

	_, err = s.SaveChart(ctx, "share", "pie", []byte(`{"type":"pie","data":{}}`))
	require.NoError(t, err)

	charts, err := s.ListCharts(ctx)
	require.NoError(t, err)
	require.Len(t, charts, 2)
	assert.Equal(t, "cpu", charts[0].Name)
	assert.Equal(t, "share", charts[1].Name)
	assert.Nil(t, charts[0].Document)

	require.NoError(t, s.DeleteChart(ctx, "cpu"))
	_, err = s.GetChart(ctx, "cpu")
	assert.ErrorIs(t, err, ErrChartNotFound)
	assert.ErrorIs(t, s.DeleteChart(ctx, "cpu"), ErrChartNotFound)
}

func TestSnapshots(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	_, err := s.SaveSnapshot(ctx, "cpu", now.Add(-40*24*time.Hour), []byte(`{"old":true}`))
	require.NoError(t, err)
	_, err = s.SaveSnapshot(ctx, "cpu", now.Add(-time.Hour), []byte(`{"n":1}`))
	require.NoError(t, err)
	_, err = s.SaveSnapshot(ctx, "cpu", now, []byte(`{"n":2}`))
	require.NoError(t, err)

	snaps, err := s.GetSnapshots(ctx, "cpu", 2)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.JSONEq(t, `{"n":2}`, string(snaps[0].Document))

	purged, err := s.PurgeSnapshots(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	snaps, err = s.GetSnapshots(ctx, "cpu", 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestLogEntries(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		require.NoError(t, s.SaveLogEntry(ctx, LogEntry{
			Timestamp: time.Now(),
			Level:     int(lvl),
			Message:   "entry " + lvl.String(),
			Attrs:     strings.Repeat("x", i),
		}))
	}

	entries, err := s.GetLogEntries(ctx, slog.LevelWarn, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "entry ERROR", entries[0].Message)

	require.NoError(t, s.PurgeLog(ctx, 1))
	entries, err = s.GetLogEntries(ctx, slog.LevelDebug, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "entry ERROR", entries[0].Message)
}

func TestBackup(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	zipPath, err := s.Backup(ctx)
	require.NoError(t, err)
	assert.FileExists(t, zipPath)
	assert.NoFileExists(t, strings.TrimSuffix(zipPath, ".zip"))

	old := filepath.Join(dir, "backups", "20000101_000000_charts.db.zip")
	require.NoError(t, os.WriteFile(old, []byte("old"), 0o644))
	stray := filepath.Join(dir, "backups", "notes.txt")
	require.NoError(t, os.WriteFile(stray, []byte("keep"), 0o644))

	require.NoError(t, s.PurgeBackups(ctx, 7))
	assert.NoFileExists(t, old)
	assert.FileExists(t, stray)
	assert.FileExists(t, zipPath)
}

func TestReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charts.db")
	ctx := context.Background()

	s, err := New(ctx, path)
	require.NoError(t, err)
	_, err = s.SaveChart(ctx, "kept", "bar", []byte(`{}`))
	require.NoError(t, err)
	s.Close()

	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	row, err := s.GetChart(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, "bar", row.Type)
	assert.NoDirExists(t, filepath.Join(dir, "backups"))
}
