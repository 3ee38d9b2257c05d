// Package store persists chart documents, their snapshots and the
// application log in SQLite.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"time"

	sqlite "modernc.org/sqlite"
)

//go:embed migrations
var migrationsDir embed.FS

// ErrChartNotFound is returned when no chart is stored under a name.
var ErrChartNotFound = errors.New("chart not found")

type Store struct {
	logger *slog.Logger
	read   *sql.DB
	write  *sql.DB
	path   string
}

const initSQL = `
	PRAGMA journal_mode = WAL;
	PRAGMA synchronous = NORMAL;
	PRAGMA temp_store = MEMORY;
	PRAGMA busy_timeout = 5000;
	PRAGMA foreign_keys = ON;
	PRAGMA trusted_schema = OFF;
`

const timeLayout = time.RFC3339

func init() {
	sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, _ string) error {
		_, err := conn.ExecContext(context.Background(), initSQL, nil)
		return err
	})
}

// New opens the database at path with one writer and a pool of readers and
// applies pending migrations.
func New(ctx context.Context, path string) (*Store, error) {
	read, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error when opening database (read): %w", err)
	}
	read.SetMaxOpenConns(10)
	read.SetConnMaxIdleTime(time.Minute)

	write, err := sql.Open("sqlite", path)
	if err != nil {
		read.Close()
		return nil, fmt.Errorf("error when opening database (write): %w", err)
	}
	write.SetMaxOpenConns(1) // sqlite allows a single writer
	write.SetConnMaxIdleTime(time.Minute)

	s := &Store{
		logger: slog.Default().With(slog.String("module", "store")),
		read:   read,
		write:  write,
		path:   path,
	}

	if err := s.migrate(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Store) Close() {
	s.read.Close()
	s.write.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	var currVer int
	err := s.read.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currVer)
	if err != nil {
		return fmt.Errorf("get current version: %w", err)
	}

	files, err := migrationsDir.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations directory: %w", err)
	}

	var sqlFiles []string
	for _, f := range files {
		if !f.IsDir() && filepath.Ext(f.Name()) == ".sql" {
			sqlFiles = append(sqlFiles, f.Name())
		}
	}
	slices.Sort(sqlFiles)

	backupBeforeMigration := currVer == 0 // nothing worth saving in a new file
	re := regexp.MustCompile(`^(\d+)[-_]`)

	for _, name := range sqlFiles {
		matches := re.FindStringSubmatch(name)
		if len(matches) < 2 {
			return fmt.Errorf("parse version from migration file: %s", name)
		}
		nextVer, err := strconv.Atoi(matches[1])
		if err != nil {
			return fmt.Errorf("convert migration version from file %s: %w", name, err)
		}
		if nextVer <= currVer {
			continue
		}

		if !backupBeforeMigration {
			backupBeforeMigration = true
			if _, err := s.Backup(ctx); err != nil {
				return fmt.Errorf("backup database before migration: %w", err)
			}
		}

		s.logger.Debug(fmt.Sprintf("applying migration %d", nextVer))

		data, err := migrationsDir.ReadFile(path.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("read migration file %s: %w", name, err)
		}

		if err := s.applyMigration(ctx, nextVer, string(data)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) applyMigration(ctx context.Context, version int, stmts string) error {
	tx, err := s.write.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction for migration %d: %w", version, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, stmts); err != nil {
		return fmt.Errorf("apply migration %d: %w", version, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d;", version)); err != nil {
		return fmt.Errorf("update database version for migration %d: %w", version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %d: %w", version, err)
	}
	return nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
