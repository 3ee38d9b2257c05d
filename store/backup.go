package store

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

const backupTimeLayout = "20060102_150405"

func (s *Store) backupDir() string {
	return filepath.Join(filepath.Dir(s.path), "backups")
}

// Backup writes a compacted copy of the database into a zip file next to it
// and returns the zip's path.
func (s *Store) Backup(ctx context.Context) (string, error) {
	dir := s.backupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	dest := filepath.Join(dir, fmt.Sprintf("%s_charts.db", time.Now().Format(backupTimeLayout)))
	if _, err := s.write.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return "", fmt.Errorf("vacuuming database into '%s': %w", dest, err)
	}

	zipPath := dest + ".zip"
	if err := zipFile(dest, zipPath, filepath.Base(s.path)); err != nil {
		return "", err
	}

	if err := os.Remove(dest); err != nil {
		s.logger.Warn("could not remove original backup after compression", slog.String("error", err.Error()))
	}

	s.logger.Info("database backup complete", slog.String("filename", zipPath))
	return zipPath, nil
}

func zipFile(src, zipPath, entryName string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create zip file: %w", err)
	}
	defer out.Close()

	zipWriter := zip.NewWriter(out)
	defer zipWriter.Close()

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open database backup for compression: %w", err)
	}
	defer in.Close()

	fileInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("get file info: %w", err)
	}

	header, err := zip.FileInfoHeader(fileInfo)
	if err != nil {
		return fmt.Errorf("create zip header: %w", err)
	}
	header.Name = entryName
	header.Method = zip.Deflate

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create zip file entry: %w", err)
	}

	if _, err := io.Copy(writer, in); err != nil {
		return fmt.Errorf("write database to zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finalize zip file: %w", err)
	}
	return nil
}

// PurgeBackups deletes backup files older than retentionDays. Files whose
// name does not start with a backup timestamp are left alone.
func (s *Store) PurgeBackups(ctx context.Context, retentionDays int) error {
	if retentionDays < 1 {
		return nil
	}
	retention := time.Duration(retentionDays) * 24 * time.Hour

	dir := s.backupDir()
	s.logger.Debug("purging old backups", slog.String("dir", dir))

	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read backup directory: %w", err)
	}

	re := regexp.MustCompile(`^(\d{8}_\d{6})`)
	for _, file := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		match := re.FindString(file.Name())
		if match == "" {
			continue
		}
		t, err := time.ParseInLocation(backupTimeLayout, match, time.Local)
		if err != nil {
			s.logger.Debug("failed to parse backup timestamp", slog.String("filename", file.Name()), slog.String("error", err.Error()))
			continue
		}
		if time.Since(t) > retention {
			path := filepath.Join(dir, file.Name())
			s.logger.Debug("deleting old backup", slog.String("path", path))
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove old backup '%s': %w", path, err)
			}
		}
	}

	s.logger.Info("backup purge complete")
	return nil
}
