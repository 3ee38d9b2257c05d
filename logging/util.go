package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelFromString maps a config value to a level, INFO when nil or unknown.
func LevelFromString(str *string) slog.Level {
	if str == nil {
		return slog.LevelInfo
	}
	if l, err := ParseLevel(*str); err == nil {
		return l
	}
	return slog.LevelInfo
}

// ParseLevel is the strict variant used for command line flags.
func ParseLevel(str string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case slog.LevelDebug.String():
		return slog.LevelDebug, nil
	case slog.LevelInfo.String():
		return slog.LevelInfo, nil
	case slog.LevelWarn.String(), "WARNING":
		return slog.LevelWarn, nil
	case slog.LevelError.String():
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", str)
	}
}
