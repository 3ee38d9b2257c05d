package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/angas/chartjs-go/logging"
	"github.com/spf13/viper"
)

type AppConfigApi struct {
	Address string
	Port    int16
	// If not assigned, the server will serve embedded templates.
	// If assigned, templates are read from "<www_dir>/templates" and
	// reloaded when they change. This is useful for development.
	WwwDir *string `mapstructure:"www_dir"`
}

type AppConfigDatabase struct {
	Path string
	// How many days chart snapshots are kept before they get purged
	DataRetentionDays *int `mapstructure:"data_retention_days"`
	// How many days daily backup files are kept before they get deleted
	BackupRetentionDays *int `mapstructure:"backup_retention_days"`
}

func (d AppConfigDatabase) GetDataRetentionDays() int {
	if d.DataRetentionDays == nil {
		return 30
	}
	return *d.DataRetentionDays
}

func (d AppConfigDatabase) GetBackupRetentionDays() int {
	if d.BackupRetentionDays == nil {
		return 30
	}
	return *d.BackupRetentionDays
}

// AppConfigMqtt is the broker live samples are read from. An empty host
// disables the feed.
type AppConfigMqtt struct {
	Host     string
	Port     int16
	Username string
	Password string
	ClientID *string `mapstructure:"client_id"`
	// Samples are read from "<topic>/#", default: "charts"
	Topic *string
}

func (m AppConfigMqtt) GetClientID() string {
	if m.ClientID == nil {
		return "chartjs-go"
	}
	return *m.ClientID
}

func (m AppConfigMqtt) GetTopic() string {
	if m.Topic == nil {
		return "charts"
	}
	return strings.TrimSuffix(*m.Topic, "/")
}

type AppConfigSnapshot struct {
	// Cron spec for storing every live chart, default: every five minutes
	RunAt *string `mapstructure:"run_at"`
	// Number of samples a live chart keeps per series, default: 60
	MaxPoints *int `mapstructure:"max_points"`
	// Cron spec for purge and backup, default: "30 2 * * *"
	MaintenanceAt *string `mapstructure:"maintenance_at"`
}

func (s AppConfigSnapshot) GetRunAt() string {
	if s.RunAt == nil {
		return "*/5 * * * *"
	}
	return *s.RunAt
}

func (s AppConfigSnapshot) GetMaxPoints() int {
	if s.MaxPoints == nil || *s.MaxPoints < 1 {
		return 60
	}
	return *s.MaxPoints
}

func (s AppConfigSnapshot) GetMaintenanceAt() string {
	if s.MaintenanceAt == nil {
		return "30 2 * * *"
	}
	return *s.MaintenanceAt
}

type AppConfigLogging struct {
	// Min log level for database : "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	DbLevel *string `mapstructure:"db_level"`
	// Log attributes format: "TEXT", "JSON", default: "JSON"
	DbAttrsFormat *string `mapstructure:"db_attrs_format"`
	// Maximum number of log entries in the database, default: 10000
	DbMaxEntries *int `mapstructure:"db_max_entries"`
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetDbLevel() slog.Level {
	return logging.LevelFromString(l.DbLevel)
}

func (l AppConfigLogging) GetDbAttrsFormat() logging.LogAttrFormat {
	if l.DbAttrsFormat != nil && strings.EqualFold(*l.DbAttrsFormat, "text") {
		return logging.LogAttrFormatText
	}
	return logging.LogAttrFormatJSON
}

func (l AppConfigLogging) GetDbMaxEntries() int {
	if l.DbMaxEntries == nil {
		return 10000
	}
	return *l.DbMaxEntries
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Api      AppConfigApi
	Database AppConfigDatabase
	Mqtt     AppConfigMqtt
	Snapshot AppConfigSnapshot `mapstructure:"snapshot"`
	Logging  AppConfigLogging  `mapstructure:"logging"`
}

// Load reads the YAML config at path, or config/config.yaml when path is
// empty. Environment variables override file values, e.g. MQTT_HOST for
// mqtt.host.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c AppConfig

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
