package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angas/chartjs-go/store"
)

type LogAttrFormat string

const (
	LogAttrFormatText LogAttrFormat = "TEXT"
	LogAttrFormatJSON LogAttrFormat = "JSON"
)

// LogSink persists log entries; *store.Store is one.
type LogSink interface {
	SaveLogEntry(ctx context.Context, e store.LogEntry) error
}

// SQLiteHandler writes records at or above minLevel to the log table. Attrs
// bound with WithAttrs are stored ahead of the record's own attrs; groups
// are flattened into dotted keys.
type SQLiteHandler struct {
	sink     LogSink
	minLevel slog.Level
	format   LogAttrFormat
	attrs    []slog.Attr
	group    string
}

func NewSQLiteHandler(sink LogSink, minLevel slog.Level, format LogAttrFormat) *SQLiteHandler {
	return &SQLiteHandler{sink: sink, minLevel: minLevel, format: format}
}

func (h *SQLiteHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < h.minLevel {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))
		return true
	})

	return h.sink.SaveLogEntry(ctx, store.LogEntry{
		Timestamp: recordTime(r),
		Level:     int(r.Level),
		Message:   r.Message,
		Attrs:     formatAttrs(h.format, attrs),
	})
}

func (h *SQLiteHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, h.qualify(a))
	}
	return &h2
}

func (h *SQLiteHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.group = h.qualifyKey(name)
	return &h2
}

func (h *SQLiteHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

func (h *SQLiteHandler) qualify(a slog.Attr) slog.Attr {
	return slog.Attr{Key: h.qualifyKey(a.Key), Value: a.Value}
}

func (h *SQLiteHandler) qualifyKey(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func formatAttrs(format LogAttrFormat, attrs []slog.Attr) string {
	if len(attrs) == 0 {
		return ""
	}

	if strings.EqualFold(string(format), string(LogAttrFormatText)) {
		var b strings.Builder
		for _, a := range attrs {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(a.Key)
			b.WriteString("=")
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(a.Value.String(), "=", "\\="), ";", "\\;"))
		}
		return b.String()
	}

	list := make([]map[string]string, 0, len(attrs))
	for _, a := range attrs {
		list = append(list, map[string]string{a.Key: a.Value.String()})
	}
	jsonBytes, err := json.Marshal(list)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(jsonBytes)
}

func recordTime(r slog.Record) time.Time {
	if r.Time.IsZero() {
		return time.Now()
	}
	return r.Time
}
