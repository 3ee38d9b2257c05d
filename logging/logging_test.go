package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/angas/chartjs-go/store"
)

func TestLevelFromString(t *testing.T) {
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name string
		in   *string
		want slog.Level
	}{
		{"nil", nil, slog.LevelInfo},
		{"debug", ptr("debug"), slog.LevelDebug},
		{"warn", ptr("WARN"), slog.LevelWarn},
		{"warning", ptr("warning"), slog.LevelWarn},
		{"error", ptr(" Error "), slog.LevelError},
		{"unknown", ptr("verbose"), slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFromString(tt.in); got != tt.want {
				t.Errorf("LevelFromString expected %v, got %v", tt.want, got)
			}
		})
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("ParseLevel(verbose) expected error")
	}
}

type memorySink struct {
	entries []store.LogEntry
	err     error
}

func (s *memorySink) SaveLogEntry(_ context.Context, e store.LogEntry) error {
	s.entries = append(s.entries, e)
	return s.err
}

func TestSQLiteHandler(t *testing.T) {
	sink := &memorySink{}
	logger := slog.New(NewSQLiteHandler(sink, slog.LevelInfo, LogAttrFormatJSON)).
		With("module", "feed")

	logger.Debug("dropped")
	logger.Info("sample received", slog.String("chart", "cpu"))

	if len(sink.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sink.entries))
	}
	e := sink.entries[0]
	if e.Message != "sample received" {
		t.Errorf("Message expected %q, got %q", "sample received", e.Message)
	}
	if e.Level != int(slog.LevelInfo) {
		t.Errorf("Level expected %d, got %d", slog.LevelInfo, e.Level)
	}
	if want := `[{"module":"feed"},{"chart":"cpu"}]`; e.Attrs != want {
		t.Errorf("Attrs expected %q, got %q", want, e.Attrs)
	}
	if e.Timestamp.IsZero() {
		t.Errorf("Timestamp expected to be set")
	}
}

func TestSQLiteHandlerTextFormat(t *testing.T) {
	sink := &memorySink{}
	logger := slog.New(NewSQLiteHandler(sink, slog.LevelDebug, LogAttrFormatText)).
		WithGroup("http")

	logger.Warn("slow", slog.String("path", "/a=b;c"))

	if want := `http.path=/a\=b\;c`; sink.entries[0].Attrs != want {
		t.Errorf("Attrs expected %q, got %q", want, sink.entries[0].Attrs)
	}
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	failing := &memorySink{err: errors.New("disk full")}

	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
		NewSQLiteHandler(failing, slog.LevelError, LogAttrFormatJSON),
	)
	logger := slog.New(h).With("module", "test")

	logger.Debug("only debug")
	logger.Warn("both")

	if !strings.Contains(debugBuf.String(), "only debug") || !strings.Contains(debugBuf.String(), "both") {
		t.Errorf("debug handler expected both records, got %q", debugBuf.String())
	}
	if strings.Contains(warnBuf.String(), "only debug") {
		t.Errorf("warn handler expected no debug record, got %q", warnBuf.String())
	}
	if !strings.Contains(warnBuf.String(), "module=test") {
		t.Errorf("warn handler expected bound attrs, got %q", warnBuf.String())
	}

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "boom", 0))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Handle expected sink error, got %v", err)
	}
	if !strings.Contains(warnBuf.String(), "boom") {
		t.Errorf("a failing handler must not keep the record from the others")
	}
}
