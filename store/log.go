package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type LogEntry struct {
	Timestamp time.Time
	Level     int
	Message   string
	Attrs     string
}

func (s *Store) SaveLogEntry(ctx context.Context, e LogEntry) error {
	_, err := s.write.ExecContext(ctx, `
		INSERT INTO log (timestamp, level, message, attrs)
		VALUES (?, ?, ?, ?)`,
		formatTime(e.Timestamp),
		e.Level,
		e.Message,
		e.Attrs)
	if err != nil {
		return fmt.Errorf("saving log entry: %w", err)
	}
	return nil
}

// GetLogEntries pages through entries at or above minLvl, newest first.
func (s *Store) GetLogEntries(ctx context.Context, minLvl slog.Level, page, pageSize int) ([]LogEntry, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	rows, err := s.read.QueryContext(ctx, `
		SELECT timestamp, level, message, attrs
		FROM log
		WHERE level >= ?
		ORDER BY id DESC
		LIMIT ? OFFSET ?`,
		int(minLvl), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching log entries: %w", err)
	}
	defer rows.Close()

	var ts string
	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&ts, &e.Level, &e.Message, &e.Attrs); err != nil {
			return nil, err
		}
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading log rows: %w", err)
	}

	return entries, nil
}

// PurgeLog keeps the newest maxLogEntries entries.
func (s *Store) PurgeLog(ctx context.Context, maxLogEntries int) error {
	s.logger.Debug("purging log")
	_, err := s.write.ExecContext(ctx, `
		DELETE FROM log WHERE id <= (SELECT id FROM log ORDER BY id DESC LIMIT 1 OFFSET ?)`, maxLogEntries)
	if err != nil {
		return fmt.Errorf("purging log: %w", err)
	}
	return nil
}
