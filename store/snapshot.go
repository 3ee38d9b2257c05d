package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SnapshotRow is a chart document as it looked at TakenAt.
type SnapshotRow struct {
	ID        uuid.UUID       `json:"id"`
	ChartName string          `json:"chart"`
	TakenAt   time.Time       `json:"takenAt"`
	Document  json.RawMessage `json:"document"`
}

func (s *Store) SaveSnapshot(ctx context.Context, name string, takenAt time.Time, doc []byte) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.write.ExecContext(ctx, `
		INSERT INTO snapshot (id, chart_name, taken_at, document)
		VALUES (?, ?, ?, ?)`,
		id.String(), name, formatTime(takenAt), string(doc))
	if err != nil {
		return uuid.Nil, fmt.Errorf("saving snapshot of %q: %w", name, err)
	}
	return id, nil
}

// GetSnapshots returns up to limit snapshots of a chart, newest first.
func (s *Store) GetSnapshots(ctx context.Context, name string, limit int) ([]SnapshotRow, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := s.read.QueryContext(ctx, `
		SELECT id, chart_name, taken_at, document
		FROM snapshot
		WHERE chart_name = ?
		ORDER BY taken_at DESC
		LIMIT ?`, name, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshots of %q: %w", name, err)
	}
	defer rows.Close()

	var snapshots []SnapshotRow
	for rows.Next() {
		var r SnapshotRow
		var id, takenAt, doc string
		if err := rows.Scan(&id, &r.ChartName, &takenAt, &doc); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing snapshot id: %w", err)
		}
		if r.TakenAt, err = parseTime(takenAt); err != nil {
			return nil, err
		}
		r.Document = json.RawMessage(doc)
		snapshots = append(snapshots, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot rows: %w", err)
	}
	return snapshots, nil
}

// PurgeSnapshots deletes snapshots older than retentionDays and reports how
// many were removed.
func (s *Store) PurgeSnapshots(ctx context.Context, retentionDays int) (int64, error) {
	s.logger.Debug("purging snapshots")
	before := time.Now().Add(-24 * time.Hour * time.Duration(retentionDays))
	res, err := s.write.ExecContext(ctx, `DELETE FROM snapshot WHERE taken_at < ?`, formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("error when purging snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.logger.Warn("can't get rows affected by purge", slog.String("table", "snapshot"), slog.Any("error", err))
		return 0, nil
	}
	s.logger.Debug(fmt.Sprintf("purged %d snapshots", n))
	return n, nil
}
