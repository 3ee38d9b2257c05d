package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/angas/chartjs-go/logging"
)

const testConfig = `
api:
  address: 0.0.0.0
  port: 9090
database:
  path: /tmp/charts.db
  data_retention_days: 7
mqtt:
  host: broker.local
  port: 1883
  topic: plant/
snapshot:
  max_points: 120
logging:
  db_level: warn
  db_attrs_format: text
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	t.Run("Api", func(t *testing.T) {
		if config.Api.Address != "0.0.0.0" {
			t.Errorf("Expected address 0.0.0.0, got %q", config.Api.Address)
		}
		if config.Api.Port != 9090 {
			t.Errorf("Expected port 9090, got %d", config.Api.Port)
		}
		if config.Api.WwwDir != nil {
			t.Errorf("Expected no www dir, got %q", *config.Api.WwwDir)
		}
	})

	t.Run("Database", func(t *testing.T) {
		if config.Database.Path != "/tmp/charts.db" {
			t.Errorf("Expected path /tmp/charts.db, got %q", config.Database.Path)
		}
		if got := config.Database.GetDataRetentionDays(); got != 7 {
			t.Errorf("Expected data retention 7, got %d", got)
		}
		if got := config.Database.GetBackupRetentionDays(); got != 30 {
			t.Errorf("Expected default backup retention 30, got %d", got)
		}
	})

	t.Run("Mqtt", func(t *testing.T) {
		if config.Mqtt.Host != "broker.local" {
			t.Errorf("Expected host broker.local, got %q", config.Mqtt.Host)
		}
		if got := config.Mqtt.GetTopic(); got != "plant" {
			t.Errorf("Expected topic plant, got %q", got)
		}
		if got := config.Mqtt.GetClientID(); got != "chartjs-go" {
			t.Errorf("Expected default client id, got %q", got)
		}
	})

	t.Run("Snapshot", func(t *testing.T) {
		if got := config.Snapshot.GetMaxPoints(); got != 120 {
			t.Errorf("Expected max points 120, got %d", got)
		}
		if got := config.Snapshot.GetRunAt(); got != "*/5 * * * *" {
			t.Errorf("Expected default run_at, got %q", got)
		}
	})

	t.Run("Logging", func(t *testing.T) {
		if got := config.Logging.GetDbLevel(); got != slog.LevelWarn {
			t.Errorf("Expected db level WARN, got %v", got)
		}
		if got := config.Logging.GetConsoleLevel(); got != slog.LevelInfo {
			t.Errorf("Expected default console level INFO, got %v", got)
		}
		if got := config.Logging.GetDbAttrsFormat(); got != logging.LogAttrFormatText {
			t.Errorf("Expected TEXT attrs format, got %q", got)
		}
		if got := config.Logging.GetDbMaxEntries(); got != 10000 {
			t.Errorf("Expected default max entries 10000, got %d", got)
		}
	})
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("MQTT_HOST", "env-broker")
	t.Setenv("API_PORT", "7070")

	config, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if config.Mqtt.Host != "env-broker" {
		t.Errorf("Expected host from env, got %q", config.Mqtt.Host)
	}
	if config.Api.Port != 7070 {
		t.Errorf("Expected port from env, got %d", config.Api.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}
