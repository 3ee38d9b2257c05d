package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChartRow is a named chart document. Type is the document's chart type,
// kept in its own column so charts can be listed without parsing documents.
type ChartRow struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Document  json.RawMessage `json:"document,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SaveChart stores doc under name, replacing an earlier document but keeping
// its id and creation time.
func (s *Store) SaveChart(ctx context.Context, name, chartType string, doc []byte) (ChartRow, error) {
	now := formatTime(time.Now())
	_, err := s.write.ExecContext(ctx, `
		INSERT INTO chart (id, name, type, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			type = excluded.type,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		uuid.New().String(), name, chartType, string(doc), now, now)
	if err != nil {
		return ChartRow{}, fmt.Errorf("saving chart %q: %w", name, err)
	}
	return s.GetChart(ctx, name)
}

func (s *Store) GetChart(ctx context.Context, name string) (ChartRow, error) {
	row := s.read.QueryRowContext(ctx, `
		SELECT id, name, type, document, created_at, updated_at
		FROM chart
		WHERE name = ?`, name)

	var doc string
	r, err := scanChart(row, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return ChartRow{}, fmt.Errorf("%w: %q", ErrChartNotFound, name)
	}
	if err != nil {
		return ChartRow{}, fmt.Errorf("fetching chart %q: %w", name, err)
	}
	r.Document = json.RawMessage(doc)
	return r, nil
}

// ListCharts returns every stored chart ordered by name, without documents.
func (s *Store) ListCharts(ctx context.Context) ([]ChartRow, error) {
	rows, err := s.read.QueryContext(ctx, `
		SELECT id, name, type, '', created_at, updated_at
		FROM chart
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("fetching charts: %w", err)
	}
	defer rows.Close()

	var doc string
	var charts []ChartRow
	for rows.Next() {
		r, err := scanChart(rows, &doc)
		if err != nil {
			return nil, err
		}
		charts = append(charts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading chart rows: %w", err)
	}
	return charts, nil
}

// DeleteChart removes the chart and its snapshots.
func (s *Store) DeleteChart(ctx context.Context, name string) error {
	tx, err := s.write.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("deleting chart %q: %w", name, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx, `DELETE FROM chart WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting chart %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrChartNotFound, name)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot WHERE chart_name = ?`, name); err != nil {
		return fmt.Errorf("deleting snapshots of %q: %w", name, err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChart(row rowScanner, doc *string) (ChartRow, error) {
	var r ChartRow
	var id, created, updated string
	if err := row.Scan(&id, &r.Name, &r.Type, doc, &created, &updated); err != nil {
		return ChartRow{}, err
	}

	var err error
	if r.ID, err = uuid.Parse(id); err != nil {
		return ChartRow{}, fmt.Errorf("parsing chart id: %w", err)
	}
	if r.CreatedAt, err = parseTime(created); err != nil {
		return ChartRow{}, err
	}
	if r.UpdatedAt, err = parseTime(updated); err != nil {
		return ChartRow{}, err
	}
	return r, nil
}
